package analytics

import (
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// LabelOther buckets records whose priority is not one of the recognized
// levels. Unknown labels are never dropped; they surface explicitly so that
// per-group percentages still account for the full ticket set.
const LabelOther = "Other"

// KeyFunc selects the grouping dimension for a ticket.
type KeyFunc func(domain.Ticket) string

// ByCategory groups by ticket category.
func ByCategory(t domain.Ticket) string { return t.Category }

// ByTeam groups by assigned team.
func ByTeam(t domain.Ticket) string { return t.AssignedTeam }

// ByPriority groups by priority level, folding unrecognized values into the
// Other bucket.
func ByPriority(t domain.Ticket) string {
	if !domain.KnownPriority(t.Priority) {
		return LabelOther
	}
	return string(t.Priority)
}

func groupBy(tickets []domain.Ticket, key KeyFunc) map[string][]domain.Ticket {
	groups := make(map[string][]domain.Ticket)
	for _, t := range tickets {
		k := key(t)
		groups[k] = append(groups[k], t)
	}
	return groups
}

func resolutionHours(tickets []domain.Ticket) []float64 {
	hours := make([]float64, len(tickets))
	for i, t := range tickets {
		hours[i] = t.ResolutionHours
	}
	return hours
}

func countBreached(tickets []domain.Ticket) int {
	var n int
	for _, t := range tickets {
		if t.SLABreached {
			n++
		}
	}
	return n
}
