package kafka

import "time"

// CatalogChangedEvent is emitted when an admin creates or deletes a
// catalog entity
type CatalogChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Kind      string    `json:"kind"`
	EntityID  uint      `json:"entity_id"`
	Name      string    `json:"name,omitempty"`
	ActorID   uint      `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

// FavoriteChangedEvent is emitted when a user adds or removes a favorite
type FavoriteChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	Kind      string    `json:"kind"`
	EntityID  uint      `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeCatalogCreated  = "catalog.created"
	EventTypeCatalogDeleted  = "catalog.deleted"
	EventTypeFavoriteAdded   = "favorite.added"
	EventTypeFavoriteRemoved = "favorite.removed"
)

// Kafka topics
const (
	TopicCatalogEvents  = "catalog-events"
	TopicFavoriteEvents = "favorite-events"
)
