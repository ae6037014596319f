package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters for report computations,
// dataset ingests and request errors.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	reportCount  map[string]int64
	reportNanos  map[string]int64
	ingestRows   map[string]int64
	errorCount   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		reportCount:  make(map[string]int64),
		reportNanos:  make(map[string]int64),
		ingestRows:   make(map[string]int64),
		errorCount:   make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordReport tracks one aggregate computation and its duration.
func (m *Metrics) RecordReport(name string, duration time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportCount[name]++
	m.reportNanos[name] += duration.Nanoseconds()
}

// RecordIngest tracks rows loaded from one dataset source.
func (m *Metrics) RecordIngest(source string, rows int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingestRows[source] += int64(rows)
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// ReportCounts returns a copy of the per-report computation counters.
func (m *Metrics) ReportCounts() map[string]int64 {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int64, len(m.reportCount))
	for k, v := range m.reportCount {
		out[k] = v
	}
	return out
}
