package analytics

import (
	"sort"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// issueSignature is the repeatable-issue identity: a category, priority and
// team combination. Two tickets with the same signature are treated as the
// same underlying issue.
type issueSignature struct {
	category string
	priority domain.Priority
	team     string
}

// Signature renders the human-readable form used in report output.
func (s issueSignature) String() string {
	return s.category + " | " + string(s.priority) + " | " + s.team
}

func signatureCounts(tickets []domain.Ticket) map[issueSignature][]domain.Ticket {
	groups := make(map[issueSignature][]domain.Ticket)
	for _, t := range tickets {
		k := issueSignature{t.Category, t.Priority, t.AssignedTeam}
		groups[k] = append(groups[k], t)
	}
	return groups
}

// RepeatIncidentRow is one category's repeat-incident concentration.
type RepeatIncidentRow struct {
	Category            string   `json:"category"`
	TotalTickets        int      `json:"total_tickets"`
	RecurringTickets    int      `json:"recurring_tickets"`
	UniqueSignatures    int      `json:"unique_issue_signatures"`
	RecurringSignatures int      `json:"recurring_issue_signatures"`
	RepeatRatePct       *float64 `json:"repeat_incident_rate_percent"`
}

// RepeatIncidentRateByCategory measures, per category, how much ticket
// volume belongs to issue signatures seen more than once. Rows are ordered
// by repeat rate descending, ties by category ascending.
func RepeatIncidentRateByCategory(tickets []domain.Ticket) []RepeatIncidentRow {
	byCategory := make(map[string]*RepeatIncidentRow)
	for category, members := range groupBy(tickets, ByCategory) {
		row := &RepeatIncidentRow{Category: category, TotalTickets: len(members)}
		for _, sig := range sortedSignatures(signatureCounts(members)) {
			row.UniqueSignatures++
			if sig.count > 1 {
				row.RecurringSignatures++
				row.RecurringTickets += sig.count
			}
		}
		row.RepeatRatePct = ratio(row.RecurringTickets, row.TotalTickets)
		byCategory[category] = row
	}

	rows := make([]RepeatIncidentRow, 0, len(byCategory))
	for _, row := range byCategory {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		ri, rj := derefOrZero(rows[i].RepeatRatePct), derefOrZero(rows[j].RepeatRatePct)
		if ri != rj {
			return ri > rj
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// RecurringIssueRow is one issue signature observed more than once.
type RecurringIssueRow struct {
	Signature     string          `json:"issue_signature"`
	Category      string          `json:"category"`
	Priority      domain.Priority `json:"priority"`
	Team          string          `json:"assigned_team"`
	IncidentCount int             `json:"incident_count"`
	BreachedCount int             `json:"breached_count"`
	BreachPct     *float64        `json:"breach_rate_percent"`
}

// RecurringIssues lists the most frequent recurring issue signatures (count
// above one), up to topN, ordered by incident count then breach rate
// descending.
func RecurringIssues(tickets []domain.Ticket, topN int) []RecurringIssueRow {
	if topN <= 0 {
		topN = 15
	}

	rows := make([]RecurringIssueRow, 0)
	for sig, members := range signatureCounts(tickets) {
		if len(members) < 2 {
			continue
		}
		breached := countBreached(members)
		rows = append(rows, RecurringIssueRow{
			Signature:     sig.String(),
			Category:      sig.category,
			Priority:      sig.priority,
			Team:          sig.team,
			IncidentCount: len(members),
			BreachedCount: breached,
			BreachPct:     ratio(breached, len(members)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].IncidentCount != rows[j].IncidentCount {
			return rows[i].IncidentCount > rows[j].IncidentCount
		}
		bi, bj := derefOrZero(rows[i].BreachPct), derefOrZero(rows[j].BreachPct)
		if bi != bj {
			return bi > bj
		}
		return rows[i].Signature < rows[j].Signature
	})

	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// EscalationRow quantifies one team's contribution to escalations. A ticket
// counts as escalated when its SLA was breached or its priority is Critical.
type EscalationRow struct {
	Team          string   `json:"assigned_team"`
	TotalTickets  int      `json:"total_tickets"`
	Escalations   int      `json:"escalations"`
	SLABreaches   int      `json:"sla_breaches"`
	EscalationPct *float64 `json:"escalation_rate_percent"`
	SharePct      *float64 `json:"share_of_total_escalations_percent"`
}

// EscalationsByTeam ranks teams by their share of all escalated tickets.
func EscalationsByTeam(tickets []domain.Ticket) []EscalationRow {
	groups := groupBy(tickets, ByTeam)

	var totalEscalations int
	counts := make(map[string]*EscalationRow, len(groups))
	for team, members := range groups {
		row := &EscalationRow{Team: team, TotalTickets: len(members)}
		for _, t := range members {
			if t.SLABreached {
				row.SLABreaches++
			}
			if t.SLABreached || t.Priority == domain.PriorityCritical {
				row.Escalations++
			}
		}
		totalEscalations += row.Escalations
		counts[team] = row
	}

	rows := make([]EscalationRow, 0, len(counts))
	for _, row := range counts {
		row.EscalationPct = ratio(row.Escalations, row.TotalTickets)
		row.SharePct = ratio(row.Escalations, totalEscalations)
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Escalations != rows[j].Escalations {
			return rows[i].Escalations > rows[j].Escalations
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}

type signatureCount struct {
	sig   issueSignature
	count int
}

func sortedSignatures(groups map[issueSignature][]domain.Ticket) []signatureCount {
	out := make([]signatureCount, 0, len(groups))
	for sig, members := range groups {
		out = append(out, signatureCount{sig: sig, count: len(members)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].sig.String() < out[j].sig.String()
	})
	return out
}
