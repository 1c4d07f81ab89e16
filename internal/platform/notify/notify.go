// Package notify delivers transient user-facing feedback for mutations. Every
// create/update/delete outcome becomes one note: success or failure, with a
// best-effort human-readable message. Failures are surfaced, never retried.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level classifies a note.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Note is a single notification.
type Note struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier records notes, logs them, and optionally echoes them to a writer
// (the CLI passes stderr so feedback is visible next to command output).
type Notifier struct {
	mu    sync.Mutex
	log   zerolog.Logger
	out   io.Writer
	notes []Note
}

// New creates a Notifier that logs through log.
func New(log zerolog.Logger) *Notifier {
	return &Notifier{log: log}
}

// SetOutput echoes notes to w in addition to the log.
func (n *Notifier) SetOutput(w io.Writer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.out = w
}

// Success records a success note.
func (n *Notifier) Success(message string) {
	n.record(Note{Level: LevelSuccess, Message: message, At: time.Now()})
	n.log.Info().Str("notice", message).Msg("success")
}

// Error records a failure note.
func (n *Notifier) Error(message string) {
	n.record(Note{Level: LevelError, Message: message, At: time.Now()})
	n.log.Error().Str("notice", message).Msg("failure")
}

func (n *Notifier) record(note Note) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, note)
	if n.out != nil {
		prefix := "ok"
		if note.Level == LevelError {
			prefix = "error"
		}
		fmt.Fprintf(n.out, "%s: %s\n", prefix, note.Message)
	}
}

// Notes returns a copy of all recorded notes, oldest first.
func (n *Notifier) Notes() []Note {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Note, len(n.notes))
	copy(out, n.notes)
	return out
}

// Last returns the most recent note, if any.
func (n *Notifier) Last() (Note, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notes) == 0 {
		return Note{}, false
	}
	return n.notes[len(n.notes)-1], true
}
