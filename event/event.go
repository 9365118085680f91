package event

// Event is the sealed interface every variant implements. Every event
// carries a session id and a timestamp; ordering within a session is by
// emission sequence, not by Timestamp.
type Event interface {
	// Type returns the stable snake_case tag used in JSON serialization.
	Type() string

	// SessionID returns the session this event belongs to.
	SessionID() int64

	// Timestamp returns the event's informational timestamp.
	Timestamp() int64

	isEvent()
}

// Meta holds the fields common to every event. Embed it in each variant.
type Meta struct {
	Session int64 `json:"session_id"`
	At      int64 `json:"timestamp"`
}

// SessionID implements Event.
func (m Meta) SessionID() int64 { return m.Session }

// Timestamp implements Event.
func (m Meta) Timestamp() int64 { return m.At }

func (m Meta) isEvent() {}

// NewMeta constructs a Meta from a session id and timestamp.
func NewMeta(sessionID, timestamp int64) Meta {
	return Meta{Session: sessionID, At: timestamp}
}
