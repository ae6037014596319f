package analytics

import (
	"fmt"
	"time"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

var testEpoch = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

// tk builds a consistent ticket resolved after the given number of hours.
func tk(id string, priority domain.Priority, category, team string, hours float64) domain.Ticket {
	target, ok := domain.SLATargetHours(priority)
	if !ok {
		target = 24
	}
	return domain.Ticket{
		ID:              id,
		CreatedAt:       testEpoch,
		ResolvedAt:      testEpoch.Add(time.Duration(hours * float64(time.Hour))),
		Priority:        priority,
		Category:        category,
		AssignedTeam:    team,
		ResolutionHours: hours,
		SLATargetHours:  target,
		SLABreached:     hours > float64(target),
	}
}

// tkAt is tk with an explicit creation time.
func tkAt(id string, created time.Time, priority domain.Priority, category, team string, hours float64) domain.Ticket {
	t := tk(id, priority, category, team, hours)
	t.CreatedAt = created
	t.ResolvedAt = created.Add(time.Duration(hours * float64(time.Hour)))
	return t
}

// sequential generates n tickets with resolution hours 1..n.
func sequential(n int, priority domain.Priority, category, team string) []domain.Ticket {
	tickets := make([]domain.Ticket, n)
	for i := range tickets {
		tickets[i] = tk(fmt.Sprintf("TICKET-%05d", i+1), priority, category, team, float64(i+1))
	}
	return tickets
}
