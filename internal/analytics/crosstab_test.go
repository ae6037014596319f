package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

func TestTeamCategoryMatrix(t *testing.T) {
	tickets := []domain.Ticket{
		tk("TICKET-00001", domain.PriorityHigh, "Network", "Infrastructure", 10),
		tk("TICKET-00002", domain.PriorityHigh, "Network", "Infrastructure", 30),
		tk("TICKET-00003", domain.PriorityHigh, "Hardware", "Infrastructure", 8),
		tk("TICKET-00004", domain.PriorityHigh, "Software", "Applications", 12),
	}

	rows := TeamCategoryMatrix(tickets)

	require.Len(t, rows, 3, "only pairs present in the data appear")

	// Applications sorts before Infrastructure; within Infrastructure the
	// larger Network pair precedes Hardware.
	require.Equal(t, "Applications", rows[0].Team)
	require.Equal(t, "Software", rows[0].Category)
	require.Equal(t, "Infrastructure", rows[1].Team)
	require.Equal(t, "Network", rows[1].Category)
	require.Equal(t, 2, rows[1].Count)
	require.Equal(t, "Hardware", rows[2].Category)

	require.InDelta(t, 20.00, rows[1].MeanHours, 0.001)
	require.InDelta(t, 50.00, *rows[1].BreachPct, 0.001)
}

func TestTeamCategoryMatrixPairsAppearOnce(t *testing.T) {
	tickets := append(
		sequential(6, domain.PriorityMedium, "Email", "ServiceDesk"),
		sequential(3, domain.PriorityMedium, "Email", "Applications")...,
	)

	rows := TeamCategoryMatrix(tickets)

	seen := map[string]bool{}
	for _, row := range rows {
		key := row.Team + "|" + row.Category
		require.False(t, seen[key], "pair %s duplicated", key)
		seen[key] = true
	}
	require.Len(t, rows, 2)
}

func TestTeamCategoryMatrixEmptySet(t *testing.T) {
	require.Empty(t, TeamCategoryMatrix(nil))
}
