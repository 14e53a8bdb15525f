package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a user-facing toast.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Sink receives notifications. Implementations must not block the caller for
// long; the stores never inspect the outcome.
type Sink interface {
	Notify(n Notification)
}

// Func adapts a plain function to Sink.
type Func func(Notification)

func (f Func) Notify(n Notification) {
	if f != nil {
		f(n)
	}
}

// Discard drops every notification.
var Discard Sink = Func(nil)

// LogSink writes notifications to a zerolog.Logger.
type LogSink struct {
	Logger zerolog.Logger
}

// NewLogSink wraps logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{Logger: logger.With().Str("component", "notify").Logger()}
}

func (s *LogSink) Notify(n Notification) {
	ev := s.Logger.Info()
	if n.Severity == SeverityError {
		ev = s.Logger.Warn()
	}
	ev.Str("severity", string(n.Severity)).Str("title", n.Title).Msg(n.Description)
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
}

// All returns a copy of the recorded notifications in arrival order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Count returns how many notifications of severity were recorded.
func (r *Recorder) Count(severity Severity) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, item := range r.items {
		if item.Severity == severity {
			n++
		}
	}
	return n
}

// Multi fans a notification out to every sink.
func Multi(sinks ...Sink) Sink {
	return Func(func(n Notification) {
		for _, s := range sinks {
			if s != nil {
				s.Notify(n)
			}
		}
	})
}

var (
	_ Sink = (*LogSink)(nil)
	_ Sink = (*Recorder)(nil)
)
