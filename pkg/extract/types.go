// Package extract turns raw chat-export messages from a monitoring bot into
// typed service status events.
package extract

import "time"

// Status is the reported state of a monitored service.
type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// Opposite returns the other status. The state of a service before its first
// observed event is assumed to be the opposite of that event's status.
func (s Status) Opposite() Status {
	if s == StatusUp {
		return StatusDown
	}
	return StatusUp
}

// Event is one normalized status change for a service.
type Event struct {
	// Service is the normalized service identifier, never empty.
	Service string `json:"service"`

	// Status is the state the service entered at Time.
	Status Status `json:"status"`

	// Time is the UTC instant of the status change.
	Time time.Time `json:"time"`
}
