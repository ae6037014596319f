package analytics

import (
	"sort"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// CategoryRankRow is one category in the volume ranking.
type CategoryRankRow struct {
	Category   string   `json:"category"`
	Count      int      `json:"total_tickets"`
	PctOfTotal *float64 `json:"percent_of_total"`
	BreachPct  *float64 `json:"breach_rate_percent"`
	MeanHours  float64  `json:"avg_resolution_hours"`
	MeanDays   float64  `json:"avg_resolution_days"`
}

// DefaultTopCategories bounds the ranking when no limit is supplied.
const DefaultTopCategories = 5

// TopCategories ranks categories by ticket count descending (ties by name
// ascending) and returns the first n. The percent-of-total denominator is
// the full ticket set, so the percentages across all categories sum to
// 100.00 up to rounding regardless of the truncation.
func TopCategories(tickets []domain.Ticket, n int) []CategoryRankRow {
	if n <= 0 {
		n = DefaultTopCategories
	}
	total := len(tickets)
	groups := groupBy(tickets, ByCategory)

	rows := make([]CategoryRankRow, 0, len(groups))
	for category, members := range groups {
		mean := *Mean(resolutionHours(members))
		rows = append(rows, CategoryRankRow{
			Category:   category,
			Count:      len(members),
			PctOfTotal: ratio(len(members), total),
			BreachPct:  ratio(countBreached(members), len(members)),
			MeanHours:  Round2(mean),
			MeanDays:   Round2(mean / 24),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})

	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
