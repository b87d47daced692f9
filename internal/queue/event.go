// Package queue defines message payloads exchanged over the message broker.
package queue

// ProductChangedEvent is published after every successful product mutation.
// It carries enough for downstream consumers to build an audit trail or
// trigger notifications without querying the primary database.
type ProductChangedEvent struct {
	Action    string `json:"action"` // created | updated | deleted
	ProductID int64  `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Category  string `json:"category,omitempty"`
	ChangedAt string `json:"changed_at"`
}
