package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

func TestOutliersPercentileVector(t *testing.T) {
	tickets := sequential(100, domain.PriorityLow, "Network", "Infrastructure")

	report := Outliers(tickets, 95)

	require.NotNil(t, report.ThresholdHours)
	require.InDelta(t, 95.05, *report.ThresholdHours, 0.001)
	require.Len(t, report.Tickets, 5, "exactly hours 96..100 exceed 95.05")

	require.InDelta(t, 100, report.Tickets[0].ResolutionHours, 0.001)
	require.InDelta(t, 96, report.Tickets[4].ResolutionHours, 0.001)
	require.InDelta(t, 4.95, report.Tickets[0].HoursAboveThreshold, 0.001)
}

func TestOutliersOrderedDescending(t *testing.T) {
	tickets := sequential(100, domain.PriorityLow, "Network", "Infrastructure")

	report := Outliers(tickets, 90)

	for i := 1; i < len(report.Tickets); i++ {
		require.GreaterOrEqual(t, report.Tickets[i-1].ResolutionHours, report.Tickets[i].ResolutionHours)
	}
}

func TestOutliersMonotonicInPercentile(t *testing.T) {
	tickets := sequential(100, domain.PriorityLow, "Network", "Infrastructure")

	at95 := Outliers(tickets, 95)
	at99 := Outliers(tickets, 99)

	require.LessOrEqual(t, len(at99.Tickets), len(at95.Tickets),
		"raising the percentile never grows the outlier set")
}

func TestOutliersFewerThanTwoTickets(t *testing.T) {
	require.Empty(t, Outliers(nil, 95).Tickets)
	require.Nil(t, Outliers(nil, 95).ThresholdHours)

	one := sequential(1, domain.PriorityLow, "Network", "Infrastructure")
	report := Outliers(one, 95)
	require.Empty(t, report.Tickets)
	require.Nil(t, report.ThresholdHours)
}

func TestOutliersDefaultPercentile(t *testing.T) {
	tickets := sequential(100, domain.PriorityLow, "Network", "Infrastructure")

	report := Outliers(tickets, 0)

	require.Equal(t, DefaultOutlierPercentile, report.Percentile)
}
