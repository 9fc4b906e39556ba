// Package queue defines message payloads exchanged over the message broker.
package queue

// Assignment event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// AssignmentEvent is published after an assignment write commits.  It
// carries enough context for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type AssignmentEvent struct {
	Action       string   `json:"action"`
	AssignmentID string   `json:"assignment_id"`
	BedID        string   `json:"bed_id"`
	BedroomID    string   `json:"bedroom_id"`
	LocationID   string   `json:"location_id"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	ProfileIDs   []string `json:"profile_ids"`
	ActorID      string   `json:"actor_id"`
	OccurredAt   string   `json:"occurred_at"`
}
