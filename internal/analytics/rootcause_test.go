package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

func TestRecurringSignatures(t *testing.T) {
	var tickets []domain.Ticket
	// 6 of 20 Network/Medium tickets: 30% of volume, above the 10% cutoff.
	tickets = append(tickets, sequential(6, domain.PriorityMedium, "Network", "Infrastructure")...)
	// 14 singles spread thin enough to stay under the cutoff.
	for i, c := range []string{"Hardware", "Software", "Access", "Security", "Email", "Hardware", "Software"} {
		tickets = append(tickets, sequential(2, domain.Priority([]string{"Low", "High"}[i%2]), c, "ServiceDesk")...)
	}

	rows := RecurringSignatures(tickets, 0.10)

	require.NotEmpty(t, rows)
	require.Equal(t, "Network", rows[0].Category)
	require.Equal(t, domain.PriorityMedium, rows[0].Priority)
	require.Equal(t, 6, rows[0].Count)
	require.InDelta(t, 30.00, *rows[0].ShareOfPct, 0.001)
	for _, row := range rows {
		require.Greater(t, float64(row.Count), 0.10*float64(len(tickets)))
	}
}

func TestRecurringSignaturesStrictThreshold(t *testing.T) {
	// Every signature holds exactly the threshold fraction of volume; the
	// strict comparison excludes all of them.
	var tickets []domain.Ticket
	for i, c := range []string{"Network", "Hardware", "Software", "Access", "Security", "Email", "Printing", "Telephony", "Backup", "Storage"} {
		tickets = append(tickets, tk(string(rune('A'+i)), domain.PriorityMedium, c, "ServiceDesk", 1))
	}

	require.Empty(t, RecurringSignatures(tickets, 0.10))
}

func TestBreachShareByTeam(t *testing.T) {
	tickets := []domain.Ticket{
		tk("TICKET-00001", domain.PriorityHigh, "Network", "Infrastructure", 30),
		tk("TICKET-00002", domain.PriorityHigh, "Network", "Infrastructure", 40),
		tk("TICKET-00003", domain.PriorityHigh, "Email", "ServiceDesk", 30),
		tk("TICKET-00004", domain.PriorityHigh, "Email", "ServiceDesk", 10),
		tk("TICKET-00005", domain.PriorityHigh, "Security", "CyberSecurity", 5),
	}

	rows := BreachShareByTeam(tickets)

	require.Len(t, rows, 3)
	require.Equal(t, "Infrastructure", rows[0].Team)
	require.InDelta(t, 66.67, *rows[0].SharePct, 0.001)
	require.Equal(t, "ServiceDesk", rows[1].Team)
	require.InDelta(t, 33.33, *rows[1].SharePct, 0.001)

	var share float64
	for _, row := range rows {
		if row.SharePct != nil {
			share += *row.SharePct
		}
	}
	require.InDelta(t, 100.00, share, 0.01)
}

func TestBreachShareByTeamNoBreaches(t *testing.T) {
	tickets := []domain.Ticket{
		tk("TICKET-00001", domain.PriorityHigh, "Network", "Infrastructure", 1),
	}

	rows := BreachShareByTeam(tickets)

	require.Len(t, rows, 1)
	require.Nil(t, rows[0].SharePct, "share of zero breaches is not applicable")
}
