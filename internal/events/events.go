package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChangeType identifies the kind of mutation a ChangeEvent describes.
type ChangeType string

// Possible change types
const (
	ChangeItemAdded             ChangeType = "item_added"
	ChangeRepetitionIncremented ChangeType = "repetition_incremented"
	ChangeItemsDeleted          ChangeType = "items_deleted"
)

// ChangeEvent is emitted after a mutation of the study collection completes.
type ChangeEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type indicates which mutation happened
	Type ChangeType `json:"type"`

	// Version is the collection version after the mutation
	Version uint64 `json:"version"`

	// ItemIDs lists the items touched by the mutation
	ItemIDs []uuid.UUID `json:"item_ids,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewChangeEvent creates a ChangeEvent of the given type for the given version.
func NewChangeEvent(changeType ChangeType, version uint64, itemIDs ...uuid.UUID) *ChangeEvent {
	return &ChangeEvent{
		ID:        uuid.New(),
		Type:      changeType,
		Version:   version,
		ItemIDs:   itemIDs,
		CreatedAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that react to changes.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *ChangeEvent) error
}

// HandlerFunc adapts an ordinary function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *ChangeEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *ChangeEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
type EventEmitter interface {
	// RegisterHandler adds a handler that will receive every later event.
	RegisterHandler(handler EventHandler)

	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *ChangeEvent) error
}
