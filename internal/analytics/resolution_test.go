package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

func TestResolutionStatsByCategory(t *testing.T) {
	tickets := []domain.Ticket{
		tk("TICKET-00001", domain.PriorityMedium, "Network", "Infrastructure", 10),
		tk("TICKET-00002", domain.PriorityMedium, "Network", "Infrastructure", 20),
		tk("TICKET-00003", domain.PriorityMedium, "Network", "Infrastructure", 30),
	}

	rows := ResolutionStats(tickets, ByCategory)

	require.Len(t, rows, 1)
	row := rows[0]
	require.Equal(t, "Network", row.Key)
	require.Equal(t, 3, row.Count)
	require.InDelta(t, 20.00, row.MeanHours, 0.001)
	require.InDelta(t, 10.0, row.MinHours, 0.001)
	require.InDelta(t, 30.0, row.MaxHours, 0.001)
	require.NotNil(t, row.StdDevHours)
	require.InDelta(t, 10.00, *row.StdDevHours, 0.001)
	require.InDelta(t, 0.83, row.MeanDays, 0.001)
}

func TestResolutionStatsOrdering(t *testing.T) {
	tickets := []domain.Ticket{
		tk("TICKET-00001", domain.PriorityLow, "Hardware", "Infrastructure", 100),
		tk("TICKET-00002", domain.PriorityHigh, "Email", "ServiceDesk", 5),
		tk("TICKET-00003", domain.PriorityHigh, "Access", "ServiceDesk", 5),
	}

	rows := ResolutionStats(tickets, ByCategory)

	require.Len(t, rows, 3)
	require.Equal(t, "Hardware", rows[0].Key)
	// Equal means ordered lexicographically.
	require.Equal(t, "Access", rows[1].Key)
	require.Equal(t, "Email", rows[2].Key)
}

func TestResolutionStatsSingleElementGroup(t *testing.T) {
	tickets := []domain.Ticket{
		tk("TICKET-00001", domain.PriorityHigh, "Security", "CyberSecurity", 12),
	}

	rows := ResolutionStats(tickets, ByTeam)

	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].Count)
	require.InDelta(t, 12.0, rows[0].MeanHours, 0.001)
	require.InDelta(t, 12.0, rows[0].MinHours, 0.001)
	require.InDelta(t, 12.0, rows[0].MaxHours, 0.001)
	require.Nil(t, rows[0].StdDevHours, "single-element stddev must be not-applicable")
}

func TestResolutionStatsEmptySet(t *testing.T) {
	require.Empty(t, ResolutionStats(nil, ByCategory))
}

func TestResolutionStatsGroupCountsSumToTotal(t *testing.T) {
	tickets := append(
		sequential(7, domain.PriorityMedium, "Software", "Applications"),
		sequential(5, domain.PriorityHigh, "Network", "Infrastructure")...,
	)

	rows := ResolutionStats(tickets, ByCategory)

	var total int
	for _, row := range rows {
		total += row.Count
	}
	require.Equal(t, len(tickets), total)
}

func TestResolutionStatsUnknownPriorityBucketsToOther(t *testing.T) {
	odd := tk("TICKET-00099", domain.Priority("P5"), "Network", "Infrastructure", 3)
	tickets := []domain.Ticket{
		odd,
		tk("TICKET-00001", domain.PriorityHigh, "Network", "Infrastructure", 6),
	}

	rows := ResolutionStats(tickets, ByPriority)

	keys := []string{rows[0].Key, rows[1].Key}
	require.Contains(t, keys, LabelOther)
	require.Contains(t, keys, "High")
}
