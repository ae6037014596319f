package domain

import (
	"fmt"
	"time"
)

// Priority enumerates SLA urgency, Critical highest.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Known category and team labels as produced by the synthetic generator.
// Both dimensions are open sets; the engine treats them as arbitrary labels.
var (
	Categories = []string{"Network", "Hardware", "Software", "Access", "Security", "Email"}
	Teams      = []string{"Infrastructure", "ServiceDesk", "CyberSecurity", "Applications"}
)

// slaTargets maps priority to the maximum allowed resolution hours.
var slaTargets = map[Priority]int{
	PriorityCritical: 4,
	PriorityHigh:     24,
	PriorityMedium:   72,
	PriorityLow:      120,
}

// SLATargetHours returns the SLA target for a priority. ok is false for
// unrecognized priorities, which carry no fixed target.
func SLATargetHours(p Priority) (hours int, ok bool) {
	hours, ok = slaTargets[p]
	return hours, ok
}

// KnownPriority reports whether p is one of the four recognized levels.
func KnownPriority(p Priority) bool {
	_, ok := slaTargets[p]
	return ok
}

// Ticket is one immutable service-desk record. A loaded collection is
// read-only for the duration of an analysis run.
type Ticket struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	ResolvedAt      time.Time `json:"resolved_at"`
	Priority        Priority  `json:"priority"`
	Category        string    `json:"category"`
	AssignedTeam    string    `json:"assigned_team"`
	ResolutionHours float64   `json:"resolution_hours"`
	SLATargetHours  int       `json:"sla_target_hours"`
	SLABreached     bool      `json:"sla_breached"`
	TicketAgeHours  float64   `json:"ticket_age_hours"`
}

// DerivedResolutionHours computes resolution time from the timestamps.
// The timestamp-derived value is authoritative over any stored copy.
func (t Ticket) DerivedResolutionHours() float64 {
	return t.ResolvedAt.Sub(t.CreatedAt).Hours()
}

// AgeHours returns ticket age relative to an injected reference time.
func (t Ticket) AgeHours(ref time.Time) float64 {
	return ref.Sub(t.CreatedAt).Hours()
}

// Validate checks per-record invariants.
func (t Ticket) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("missing ticket id")
	}
	if t.CreatedAt.IsZero() || t.ResolvedAt.IsZero() {
		return fmt.Errorf("missing created/resolved timestamp")
	}
	if t.ResolvedAt.Before(t.CreatedAt) {
		return fmt.Errorf("resolved_at precedes created_at")
	}
	if t.ResolutionHours < 0 {
		return fmt.Errorf("negative resolution_hours")
	}
	if t.SLATargetHours <= 0 {
		return fmt.Errorf("sla_target_hours must be positive")
	}
	if target, ok := SLATargetHours(t.Priority); ok && target != t.SLATargetHours {
		return fmt.Errorf("sla_target_hours %d does not match priority %s target %d", t.SLATargetHours, t.Priority, target)
	}
	if breached := t.ResolutionHours > float64(t.SLATargetHours); breached != t.SLABreached {
		return fmt.Errorf("sla_breached flag disagrees with resolution time vs target")
	}
	return nil
}
