package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event is a structural record of a domain action, emitted for
// operations that must leave an observable trail (soft deletions).
type Event struct {
	EventID  uuid.UUID
	RecordID int64
	Object   string
	Action   string
	At       time.Time
}

// Deletion builds a deletion event for the given record.
func Deletion(recordID int64, object string) Event {
	return Event{
		EventID:  uuid.New(),
		RecordID: recordID,
		Object:   object,
		Action:   "delete",
		At:       time.Now().UTC(),
	}
}

// Recorder persists audit events. Services depend on the interface so
// tests can capture what was emitted.
type Recorder interface {
	Record(ctx context.Context, e Event)
}

// RecorderFunc is a function adapter for Recorder.
type RecorderFunc func(ctx context.Context, e Event)

func (f RecorderFunc) Record(ctx context.Context, e Event) {
	f(ctx, e)
}

// LogRecorder writes events as structured log entries tagged with the
// record identifier, object type, and action.
type LogRecorder struct {
	logger zerolog.Logger
}

func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(_ context.Context, e Event) {
	r.logger.Info().
		Str("event_id", e.EventID.String()).
		Int64("id", e.RecordID).
		Str("object", e.Object).
		Str("action", e.Action).
		Time("at", e.At).
		Msg("domain event")
}
