package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventDatasetRefreshed fires after a new ticket collection has been
	// stored, replacing the previous analysis run's record set.
	EventDatasetRefreshed EventType = "dataset_refreshed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DatasetRefreshedPayload describes the freshly stored dataset.
type DatasetRefreshedPayload struct {
	Source      string `json:"source"`
	TicketCount int    `json:"ticket_count"`
	Version     string `json:"version"`
}
