package analytics

import (
	"sort"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// CrossTabRow is one (team, category) cell of the workload matrix.
type CrossTabRow struct {
	Team      string   `json:"assigned_team"`
	Category  string   `json:"category"`
	Count     int      `json:"total_tickets"`
	MeanHours float64  `json:"avg_resolution_hours"`
	BreachPct *float64 `json:"breach_rate_percent"`
}

// TeamCategoryMatrix cross-tabulates tickets over (team, category). Every
// pair present in the data appears exactly once; absent pairs are omitted,
// not zero-filled. Rows are ordered by team ascending, then count descending
// within a team (ties by category ascending).
func TeamCategoryMatrix(tickets []domain.Ticket) []CrossTabRow {
	type pair struct{ team, category string }
	groups := make(map[pair][]domain.Ticket)
	for _, t := range tickets {
		k := pair{t.AssignedTeam, t.Category}
		groups[k] = append(groups[k], t)
	}

	rows := make([]CrossTabRow, 0, len(groups))
	for k, members := range groups {
		rows = append(rows, CrossTabRow{
			Team:      k.team,
			Category:  k.category,
			Count:     len(members),
			MeanHours: Round2(*Mean(resolutionHours(members))),
			BreachPct: ratio(countBreached(members), len(members)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Team != rows[j].Team {
			return rows[i].Team < rows[j].Team
		}
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
