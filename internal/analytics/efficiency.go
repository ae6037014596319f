package analytics

import (
	"sort"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// DefaultQuickResolutionHours is the cutoff below which a resolution counts
// as quick.
const DefaultQuickResolutionHours = 24.0

// EfficiencyRow is one (category, team) group's quick-resolution profile.
type EfficiencyRow struct {
	Category       string   `json:"category"`
	Team           string   `json:"assigned_team"`
	Total          int      `json:"total_tickets"`
	QuickCount     int      `json:"quick_tickets"`
	QuickPct       *float64 `json:"quick_rate_percent"`
	QuickCompliant int      `json:"quick_compliant_tickets"`
	MeanQuickHours *float64 `json:"avg_quick_resolution_hours"`
}

// QuickResolutionEfficiency groups tickets by (category, team) and measures
// how much of each group resolves under maxHours: the quick count, its
// percentage of the group, how many quick tickets were also SLA compliant,
// and the mean resolution time over the quick subset. Groups with no quick
// tickets are filtered out entirely. Rows are ordered by quick percentage
// descending, ties by total count descending then labels ascending.
func QuickResolutionEfficiency(tickets []domain.Ticket, maxHours float64) []EfficiencyRow {
	if maxHours <= 0 {
		maxHours = DefaultQuickResolutionHours
	}

	type pair struct{ category, team string }
	groups := make(map[pair][]domain.Ticket)
	for _, t := range tickets {
		k := pair{t.Category, t.AssignedTeam}
		groups[k] = append(groups[k], t)
	}

	rows := make([]EfficiencyRow, 0, len(groups))
	for k, members := range groups {
		var quick []float64
		var quickCompliant int
		for _, t := range members {
			if t.ResolutionHours < maxHours {
				quick = append(quick, t.ResolutionHours)
				if !t.SLABreached {
					quickCompliant++
				}
			}
		}
		if len(quick) == 0 {
			continue
		}
		row := EfficiencyRow{
			Category:       k.category,
			Team:           k.team,
			Total:          len(members),
			QuickCount:     len(quick),
			QuickPct:       ratio(len(quick), len(members)),
			QuickCompliant: quickCompliant,
			MeanQuickHours: Float(Round2(*Mean(quick))),
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		qi, qj := derefOrZero(rows[i].QuickPct), derefOrZero(rows[j].QuickPct)
		if qi != qj {
			return qi > qj
		}
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}
