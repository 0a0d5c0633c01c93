// Package events defines the entity-change notifications services emit on
// successful mutations. The websocket hub fans them out to subscribers.
package events

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ChangeEvent describes one committed mutation.
type ChangeEvent struct {
	Entity string `json:"entity"`
	Action Action `json:"action"`
	ID     int64  `json:"id"`
}

// Publisher delivers change events. Publish must not block request
// handling; implementations drop events when no consumer keeps up.
type Publisher interface {
	Publish(ev ChangeEvent)
}

// NopPublisher discards all events. Used in tests and when the hub is
// disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(ChangeEvent) {}
