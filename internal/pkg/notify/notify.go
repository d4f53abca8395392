package notify

import (
	"sync"
	"time"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

const defaultHistory = 50

type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Sink receives every notification as it is raised.
type Sink func(Notification)

// Notifier is the user-facing channel for action outcomes. It keeps the most
// recent notifications for late subscribers.
type Notifier struct {
	mu      sync.Mutex
	sinks   []Sink
	recent  []Notification
	history int
	now     func() time.Time
}

func New(sinks ...Sink) *Notifier {
	return &Notifier{
		sinks:   sinks,
		history: defaultHistory,
		now:     time.Now,
	}
}

func (n *Notifier) AddSink(s Sink) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sinks = append(n.sinks, s)
}

func (n *Notifier) Info(msg string)    { n.publish(LevelInfo, msg) }
func (n *Notifier) Success(msg string) { n.publish(LevelSuccess, msg) }
func (n *Notifier) Warn(msg string)    { n.publish(LevelWarning, msg) }
func (n *Notifier) Error(msg string)   { n.publish(LevelError, msg) }

// Recent returns up to the last 50 notifications, oldest first.
func (n *Notifier) Recent() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, len(n.recent))
	copy(out, n.recent)
	return out
}

func (n *Notifier) publish(level Level, msg string) {
	note := Notification{Level: level, Message: msg, At: n.now()}

	n.mu.Lock()
	n.recent = append(n.recent, note)
	if len(n.recent) > n.history {
		n.recent = n.recent[len(n.recent)-n.history:]
	}
	sinks := make([]Sink, len(n.sinks))
	copy(sinks, n.sinks)
	n.mu.Unlock()

	for _, s := range sinks {
		s(note)
	}
}
