package template

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Security event kinds.
const (
	EventBlockedVariable = "blocked_variable"
	EventBlockedPattern  = "blocked_pattern"
)

// SecurityEvent records one blocked variable or pattern during rendering.
type SecurityEvent struct {
	Time       time.Time `json:"time"`
	Kind       string    `json:"kind"`
	TemplateID string    `json:"template_id"`
	Path       string    `json:"path"`
	Detail     string    `json:"detail"`
}

// Recorder keeps security events in a fixed-capacity ring buffer and logs
// each one. Rendering is never aborted on a violation; the event is the
// whole response.
type Recorder struct {
	mu     sync.Mutex
	events []SecurityEvent
	next   int
	count  int
	log    *zap.Logger
}

// NewRecorder builds a recorder holding at most capacity events; older
// events are overwritten. A nil logger disables log output.
func NewRecorder(capacity int, log *zap.Logger) *Recorder {
	if capacity <= 0 {
		capacity = 256
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{events: make([]SecurityEvent, capacity), log: log}
}

// Record stores and logs one event.
func (r *Recorder) Record(ev SecurityEvent) {
	r.log.Warn("template security event",
		zap.String("kind", ev.Kind),
		zap.String("template_id", ev.TemplateID),
		zap.String("path", ev.Path),
		zap.String("detail", ev.Detail),
	)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[r.next] = ev
	r.next = (r.next + 1) % len(r.events)
	if r.count < len(r.events) {
		r.count++
	}
}

// Events returns the recorded events, oldest first.
func (r *Recorder) Events() []SecurityEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]SecurityEvent, 0, r.count)
	start := r.next - r.count
	if start < 0 {
		start += len(r.events)
	}
	for i := 0; i < r.count; i++ {
		out = append(out, r.events[(start+i)%len(r.events)])
	}
	return out
}
