package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// WeeklyVolumeRow is one ISO week (starting Monday) of created tickets.
type WeeklyVolumeRow struct {
	WeekStart time.Time `json:"week_start_date"`
	Count     int       `json:"actual_tickets"`
}

// WeeklyVolume buckets tickets by the Monday starting their creation week,
// ascending, filling interior gaps with zero-count weeks so the series is
// contiguous.
func WeeklyVolume(tickets []domain.Ticket) []WeeklyVolumeRow {
	counts := make(map[time.Time]int)
	for _, t := range tickets {
		counts[weekStart(t.CreatedAt)]++
	}
	if len(counts) == 0 {
		return nil
	}

	weeks := make([]time.Time, 0, len(counts))
	for w := range counts {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	rows := make([]WeeklyVolumeRow, 0, len(weeks))
	for w := weeks[0]; !w.After(weeks[len(weeks)-1]); w = w.AddDate(0, 0, 7) {
		rows = append(rows, WeeklyVolumeRow{WeekStart: w, Count: counts[w]})
	}
	return rows
}

func weekStart(t time.Time) time.Time {
	day := t.UTC()
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
}

// ForecastRow projects one future week of ticket volume.
type ForecastRow struct {
	WeekStart  time.Time `json:"week_start_date"`
	Forecast   int       `json:"forecast_tickets"`
	LowerBound int       `json:"lower_bound"`
	UpperBound int       `json:"upper_bound"`
	Method     string    `json:"method"`
	Baseline   float64   `json:"baseline_avg"`
}

// ForecastVolume projects the next horizon weeks from a trailing
// moving-average baseline over the last window weeks, with bounds one
// recent-variability band wide (population stddev over the last
// max(8, window) weeks). Errors on an empty series.
func ForecastVolume(weekly []WeeklyVolumeRow, window, horizon int) ([]ForecastRow, error) {
	if len(weekly) == 0 {
		return nil, fmt.Errorf("weekly volume series is empty; cannot forecast")
	}
	if window <= 0 {
		window = 4
	}
	if horizon <= 0 {
		horizon = 4
	}

	counts := make([]float64, len(weekly))
	for i, row := range weekly {
		counts[i] = float64(row.Count)
	}

	baseline := *Mean(tail(counts, window))

	variability := 0.0
	if sd := PopStdDev(tail(counts, max(8, window))); sd != nil {
		variability = *sd
	}

	method := fmt.Sprintf("%d-week moving average baseline", window)
	lastWeek := weekly[len(weekly)-1].WeekStart

	rows := make([]ForecastRow, horizon)
	for i := range rows {
		rows[i] = ForecastRow{
			WeekStart:  lastWeek.AddDate(0, 0, 7*(i+1)),
			Forecast:   int(math.Round(baseline)),
			LowerBound: max(0, int(math.Round(baseline-variability))),
			UpperBound: int(math.Round(baseline + variability)),
			Method:     method,
			Baseline:   Round2(baseline),
		}
	}
	return rows, nil
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
