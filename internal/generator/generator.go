package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// resolutionProfile shapes the normal distribution resolution times are
// drawn from, clamped to [minHours, maxHours].
type resolutionProfile struct {
	mean     float64
	stdDev   float64
	minHours float64
	maxHours float64
}

// Per-priority resolution-time behavior: Critical tickets resolve fast but
// occasionally breach their tight 4h target; Low tickets drag on.
var resolutionProfiles = map[domain.Priority]resolutionProfile{
	domain.PriorityCritical: {mean: 3, stdDev: 2, minHours: 0.5, maxHours: 8},
	domain.PriorityHigh:     {mean: 18, stdDev: 8, minHours: 2, maxHours: 40},
	domain.PriorityMedium:   {mean: 60, stdDev: 20, minHours: 10, maxHours: 120},
	domain.PriorityLow:      {mean: 100, stdDev: 30, minHours: 24, maxHours: 168},
}

// priorityWeights is walked cumulatively during sampling; order matters.
var priorityWeights = []struct {
	priority domain.Priority
	weight   float64
}{
	{domain.PriorityCritical, 0.10},
	{domain.PriorityHigh, 0.20},
	{domain.PriorityMedium, 0.40},
	{domain.PriorityLow, 0.30},
}

// Config controls synthetic dataset generation.
type Config struct {
	Count     int
	Seed      int64
	StartDate time.Time
	EndDate   time.Time
	// Reference is the injected "now" used for ticket age; computations
	// never read the wall clock themselves.
	Reference time.Time
}

// Defaults mirrors the reference dataset: 2000 tickets over April-July 2025.
func Defaults() Config {
	return Config{
		Count:     2000,
		Seed:      42,
		StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Reference: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Generate produces a seeded, reproducible synthetic ticket collection.
// Every record satisfies the domain invariants by construction.
func Generate(cfg Config) ([]domain.Ticket, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("ticket count must be positive, got %d", cfg.Count)
	}
	if !cfg.EndDate.After(cfg.StartDate) {
		return nil, fmt.Errorf("end date must follow start date")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	window := cfg.EndDate.Sub(cfg.StartDate)

	tickets := make([]domain.Ticket, cfg.Count)
	for i := range tickets {
		priority := samplePriority(rng)
		profile := resolutionProfiles[priority]

		hours := rng.NormFloat64()*profile.stdDev + profile.mean
		if hours < profile.minHours {
			hours = profile.minHours
		}
		if hours > profile.maxHours {
			hours = profile.maxHours
		}

		created := cfg.StartDate.Add(time.Duration(rng.Float64() * float64(window)))
		target, _ := domain.SLATargetHours(priority)

		t := domain.Ticket{
			ID:              fmt.Sprintf("TICKET-%05d", i+1),
			CreatedAt:       created,
			ResolvedAt:      created.Add(time.Duration(hours * float64(time.Hour))),
			Priority:        priority,
			Category:        domain.Categories[rng.Intn(len(domain.Categories))],
			AssignedTeam:    domain.Teams[rng.Intn(len(domain.Teams))],
			ResolutionHours: hours,
			SLATargetHours:  target,
			SLABreached:     hours > float64(target),
		}
		if !cfg.Reference.IsZero() {
			t.TicketAgeHours = t.AgeHours(cfg.Reference)
		}
		tickets[i] = t
	}
	return tickets, nil
}

func samplePriority(rng *rand.Rand) domain.Priority {
	roll := rng.Float64()
	var cumulative float64
	for _, pw := range priorityWeights {
		cumulative += pw.weight
		if roll < cumulative {
			return pw.priority
		}
	}
	return priorityWeights[len(priorityWeights)-1].priority
}
