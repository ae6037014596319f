package analytics

import (
	"sort"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// MonthlyVolumeRow is one calendar-month bucket of created tickets.
type MonthlyVolumeRow struct {
	Month     string   `json:"month"`
	Total     int      `json:"tickets_created"`
	Critical  int      `json:"critical_tickets"`
	High      int      `json:"high_tickets"`
	Medium    int      `json:"medium_tickets"`
	Low       int      `json:"low_tickets"`
	Other     int      `json:"other_tickets"`
	Breached  int      `json:"breached_tickets"`
	GrowthPct *float64 `json:"growth_rate_percent"`
}

// MonthlyVolume buckets tickets by the calendar month of creation (YYYY-MM),
// ascending. Per bucket it emits the total, per-priority sub-counts with
// unrecognized priorities in Other, the breached count, and a growth rate
// against the previous bucket. The first bucket's growth rate is nil, as is
// any rate whose previous bucket had zero tickets.
func MonthlyVolume(tickets []domain.Ticket) []MonthlyVolumeRow {
	buckets := make(map[string]*MonthlyVolumeRow)
	for _, t := range tickets {
		month := t.CreatedAt.Format("2006-01")
		row, ok := buckets[month]
		if !ok {
			row = &MonthlyVolumeRow{Month: month}
			buckets[month] = row
		}
		row.Total++
		if t.SLABreached {
			row.Breached++
		}
		switch t.Priority {
		case domain.PriorityCritical:
			row.Critical++
		case domain.PriorityHigh:
			row.High++
		case domain.PriorityMedium:
			row.Medium++
		case domain.PriorityLow:
			row.Low++
		default:
			row.Other++
		}
	}

	rows := make([]MonthlyVolumeRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })

	for i := 1; i < len(rows); i++ {
		prev := rows[i-1].Total
		if prev == 0 {
			continue
		}
		rows[i].GrowthPct = Float(Round2(float64(rows[i].Total-prev) / float64(prev) * 100))
	}
	return rows
}
