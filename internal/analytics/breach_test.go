package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

func TestBreachRatesComplementary(t *testing.T) {
	tickets := []domain.Ticket{
		tk("TICKET-00001", domain.PriorityHigh, "Network", "Infrastructure", 10),
		tk("TICKET-00002", domain.PriorityHigh, "Network", "Infrastructure", 30),
		tk("TICKET-00003", domain.PriorityHigh, "Network", "Infrastructure", 40),
	}

	rows := BreachRates(tickets, ByCategory)

	require.Len(t, rows, 1)
	row := rows[0]
	require.Equal(t, 3, row.Total)
	require.Equal(t, 2, row.Breached)
	require.Equal(t, 1, row.Compliant)
	require.InDelta(t, 66.67, *row.BreachPct, 0.001)
	require.InDelta(t, 33.33, *row.CompliancePct, 0.001)
	require.InDelta(t, 100.00, *row.BreachPct+*row.CompliancePct, 0.01)
}

func TestBreachRatesOrdering(t *testing.T) {
	tickets := []domain.Ticket{
		// Email: 1/1 breached. Network: 1/2 breached. Hardware: 1/2 breached
		// but fewer total than Network after the extra compliant row below.
		tk("TICKET-00001", domain.PriorityHigh, "Email", "ServiceDesk", 30),
		tk("TICKET-00002", domain.PriorityHigh, "Network", "Infrastructure", 30),
		tk("TICKET-00003", domain.PriorityHigh, "Network", "Infrastructure", 10),
		tk("TICKET-00004", domain.PriorityHigh, "Network", "Infrastructure", 10),
		tk("TICKET-00005", domain.PriorityHigh, "Hardware", "Infrastructure", 30),
		tk("TICKET-00006", domain.PriorityHigh, "Hardware", "Infrastructure", 10),
	}

	rows := BreachRates(tickets, ByCategory)

	require.Len(t, rows, 3)
	require.Equal(t, "Email", rows[0].Key)
	require.Equal(t, "Hardware", rows[1].Key)
	require.Equal(t, "Network", rows[2].Key)
}

func TestBreachRatesTieBrokenByTotalDescending(t *testing.T) {
	tickets := []domain.Ticket{
		tk("TICKET-00001", domain.PriorityHigh, "Access", "ServiceDesk", 30),
		tk("TICKET-00002", domain.PriorityHigh, "Access", "ServiceDesk", 40),
		tk("TICKET-00003", domain.PriorityHigh, "Email", "ServiceDesk", 30),
	}

	rows := BreachRates(tickets, ByCategory)

	// Both fully breached; larger group first.
	require.Equal(t, "Access", rows[0].Key)
	require.Equal(t, "Email", rows[1].Key)
}

func TestBreachRatesCountsSumToTotal(t *testing.T) {
	tickets := append(
		sequential(9, domain.PriorityMedium, "Software", "Applications"),
		sequential(4, domain.PriorityCritical, "Security", "CyberSecurity")...,
	)

	rows := BreachRates(tickets, ByTeam)

	var total int
	for _, row := range rows {
		total += row.Total
		require.Equal(t, row.Total, row.Breached+row.Compliant)
	}
	require.Equal(t, len(tickets), total)
}
