package analytics

import (
	"sort"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// ResolutionStatsRow carries resolution-time statistics for one group.
type ResolutionStatsRow struct {
	Key         string   `json:"key"`
	Count       int      `json:"total_tickets"`
	MeanHours   float64  `json:"avg_resolution_hours"`
	MeanDays    float64  `json:"avg_resolution_days"`
	MinHours    float64  `json:"min_resolution_hours"`
	MaxHours    float64  `json:"max_resolution_hours"`
	MedianHours float64  `json:"median_resolution_hours"`
	StdDevHours *float64 `json:"std_resolution_hours"`
}

// ResolutionStats partitions tickets by the grouping key and computes count,
// mean (hours and days), min, max, median and sample standard deviation per
// group. A single-element group has nil stddev. Rows are ordered by mean
// resolution hours descending, ties by key ascending.
func ResolutionStats(tickets []domain.Ticket, key KeyFunc) []ResolutionStatsRow {
	groups := groupBy(tickets, key)

	rows := make([]ResolutionStatsRow, 0, len(groups))
	for k, members := range groups {
		hours := resolutionHours(members)
		mean := *Mean(hours)

		sorted := append([]float64(nil), hours...)
		sort.Float64s(sorted)
		median := sorted[len(sorted)/2]
		if len(sorted)%2 == 0 {
			median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
		}

		row := ResolutionStatsRow{
			Key:         k,
			Count:       len(members),
			MeanHours:   Round2(mean),
			MeanDays:    Round2(mean / 24),
			MinHours:    Round2(sorted[0]),
			MaxHours:    Round2(sorted[len(sorted)-1]),
			MedianHours: Round2(median),
		}
		if sd := SampleStdDev(hours); sd != nil {
			row.StdDevHours = Float(Round2(*sd))
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MeanHours != rows[j].MeanHours {
			return rows[i].MeanHours > rows[j].MeanHours
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}
