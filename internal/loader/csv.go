package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/pkg/util"
)

// Column names of the denormalized ticket export.
const (
	colTicketID        = "Ticket_ID"
	colCreatedDate     = "Created_Date"
	colResolvedDate    = "Resolved_Date"
	colPriority        = "Priority"
	colCategory        = "Category"
	colAssignedTeam    = "Assigned_Team"
	colResolutionHours = "Resolution_Hours"
	colSLATargetHours  = "SLA_Target_Hours"
	colSLABreached     = "SLA_Breached"
	colTicketAgeHours  = "Ticket_Age_Hours"
)

// hoursTolerance bounds the allowed divergence between a stored
// Resolution_Hours value and the one derived from the timestamps. The
// timestamps are authoritative; larger divergence fails the row.
const hoursTolerance = 0.01

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ParseCSV reads the ticket table from r and returns a validated collection.
// Every malformed row is reported; the returned error is a VALIDATION_FAILED
// DomainError whose details identify each offending row. The engine never
// sees an unvalidated record.
func ParseCSV(r io.Reader) ([]domain.Ticket, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, util.NewValidationError("cannot read csv header", map[string]any{"cause": err.Error()})
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colTicketID, colCreatedDate, colResolvedDate, colPriority, colCategory, colAssignedTeam} {
		if _, ok := index[required]; !ok {
			return nil, util.NewValidationError("missing required column", map[string]any{"column": required})
		}
	}

	var (
		tickets  []domain.Ticket
		rowFails []map[string]any
	)
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowFails = append(rowFails, map[string]any{"row": rowNum, "error": err.Error()})
			continue
		}

		ticket, err := parseRow(record, index)
		if err != nil {
			rowFails = append(rowFails, map[string]any{"row": rowNum, "error": err.Error()})
			continue
		}
		tickets = append(tickets, ticket)
	}

	if len(rowFails) > 0 {
		return nil, util.NewValidationError(
			fmt.Sprintf("%d malformed ticket row(s)", len(rowFails)),
			map[string]any{"rows": rowFails},
		)
	}
	return tickets, nil
}

// LoadFile parses the CSV at path.
func LoadFile(path string) ([]domain.Ticket, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCSV(f)
}

func parseRow(record []string, index map[string]int) (domain.Ticket, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var t domain.Ticket
	t.ID = field(colTicketID)
	if t.ID == "" {
		return t, fmt.Errorf("missing %s", colTicketID)
	}

	var err error
	if t.CreatedAt, err = parseTimestamp(field(colCreatedDate)); err != nil {
		return t, fmt.Errorf("%s: %w", colCreatedDate, err)
	}
	if t.ResolvedAt, err = parseTimestamp(field(colResolvedDate)); err != nil {
		return t, fmt.Errorf("%s: %w", colResolvedDate, err)
	}
	if t.ResolvedAt.Before(t.CreatedAt) {
		return t, fmt.Errorf("resolved_at precedes created_at")
	}

	t.Priority = domain.Priority(field(colPriority))
	t.Category = field(colCategory)
	t.AssignedTeam = field(colAssignedTeam)
	if t.Priority == "" || t.Category == "" || t.AssignedTeam == "" {
		return t, fmt.Errorf("missing priority, category or assigned team")
	}

	// Timestamps are authoritative over the stored redundant fields. A
	// stored value that disagrees is surfaced as a row failure, not kept.
	derived := t.DerivedResolutionHours()
	if raw := field(colResolutionHours); raw != "" {
		stored, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return t, fmt.Errorf("%s: %w", colResolutionHours, err)
		}
		if math.Abs(stored-derived) > hoursTolerance {
			return t, fmt.Errorf("stored resolution_hours %.2f diverges from timestamp-derived %.2f", stored, derived)
		}
	}
	t.ResolutionHours = derived

	if target, ok := domain.SLATargetHours(t.Priority); ok {
		t.SLATargetHours = target
	} else if raw := field(colSLATargetHours); raw != "" {
		stored, err := strconv.Atoi(raw)
		if err != nil || stored <= 0 {
			return t, fmt.Errorf("%s must be a positive integer", colSLATargetHours)
		}
		t.SLATargetHours = stored
	} else {
		return t, fmt.Errorf("unknown priority %q without %s", t.Priority, colSLATargetHours)
	}

	t.SLABreached = t.ResolutionHours > float64(t.SLATargetHours)
	if raw := field(colSLABreached); raw != "" {
		stored, err := parseBool(raw)
		if err != nil {
			return t, fmt.Errorf("%s: %w", colSLABreached, err)
		}
		if stored != t.SLABreached {
			return t, fmt.Errorf("stored sla_breached=%v disagrees with resolution %.2fh vs target %dh", stored, t.ResolutionHours, t.SLATargetHours)
		}
	}

	if raw := field(colTicketAgeHours); raw != "" {
		if t.TicketAgeHours, err = strconv.ParseFloat(raw, 64); err != nil {
			return t, fmt.Errorf("%s: %w", colTicketAgeHours, err)
		}
	}

	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("unparseable boolean %q", raw)
}
