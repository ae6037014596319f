package analytics

import (
	"sort"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// DefaultRecurrenceThreshold is the share of total volume above which a
// (category, priority) signature counts as recurring.
const DefaultRecurrenceThreshold = 0.10

// SignatureRow is one disproportionately frequent (category, priority) pair.
type SignatureRow struct {
	Category   string          `json:"category"`
	Priority   domain.Priority `json:"priority"`
	Count      int             `json:"incident_count"`
	ShareOfPct *float64        `json:"share_of_total_percent"`
	BreachPct  *float64        `json:"breach_rate_percent"`
}

// RecurringSignatures surfaces (category, priority) pairs whose ticket count
// strictly exceeds threshold x total volume, suggesting a repeat root cause.
// Rows are ordered by count descending, ties by category then priority
// ascending.
func RecurringSignatures(tickets []domain.Ticket, threshold float64) []SignatureRow {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultRecurrenceThreshold
	}
	total := len(tickets)

	type pair struct {
		category string
		priority domain.Priority
	}
	groups := make(map[pair][]domain.Ticket)
	for _, t := range tickets {
		k := pair{t.Category, t.Priority}
		groups[k] = append(groups[k], t)
	}

	cutoff := threshold * float64(total)
	rows := make([]SignatureRow, 0)
	for k, members := range groups {
		if float64(len(members)) <= cutoff {
			continue
		}
		rows = append(rows, SignatureRow{
			Category:   k.category,
			Priority:   k.priority,
			Count:      len(members),
			ShareOfPct: ratio(len(members), total),
			BreachPct:  ratio(countBreached(members), len(members)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Priority < rows[j].Priority
	})
	return rows
}

// TeamBreachShareRow attributes a share of all breached tickets to one team.
type TeamBreachShareRow struct {
	Team     string   `json:"assigned_team"`
	Total    int      `json:"total_tickets"`
	Breached int      `json:"breached_tickets"`
	SharePct *float64 `json:"share_of_breaches_percent"`
}

// BreachShareByTeam computes, per team, the share of all breached tickets
// attributed to that team. With no breaches anywhere the shares are nil.
// Rows are ordered by share (equivalently breached count) descending, ties
// by team ascending.
func BreachShareByTeam(tickets []domain.Ticket) []TeamBreachShareRow {
	totalBreached := countBreached(tickets)
	groups := groupBy(tickets, ByTeam)

	rows := make([]TeamBreachShareRow, 0, len(groups))
	for team, members := range groups {
		breached := countBreached(members)
		rows = append(rows, TeamBreachShareRow{
			Team:     team,
			Total:    len(members),
			Breached: breached,
			SharePct: ratio(breached, totalBreached),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Breached != rows[j].Breached {
			return rows[i].Breached > rows[j].Breached
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}
