// Package framesource supplies decoded frames to a session's polling
// loop.
package framesource

import (
	"sync"
	"time"
)

// Frame is one captured image buffer with its capture timestamp. Frames
// are ephemeral: the loop owns one per tick and never holds onto it.
type Frame struct {
	Data       []byte
	CapturedAt time.Time
}

// Source yields the most recent frame on demand. The second return is
// false when no frame is ready, which callers treat as a skipped tick,
// not an error.
type Source interface {
	Next() (Frame, bool)
}

// Mailbox is a one-slot, latest-wins frame buffer. Stations push frames
// at their own rate; the polling loop drains at its own. A new frame
// replaces an unconsumed one, so the loop always sees the freshest
// capture and backlog can never build up.
type Mailbox struct {
	mu    sync.Mutex
	frame Frame
	ready bool
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Offer stores a frame, replacing any unconsumed one.
func (m *Mailbox) Offer(frame Frame) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frame = frame
	m.ready = true
}

// Next takes the pending frame if one is ready.
func (m *Mailbox) Next() (Frame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return Frame{}, false
	}
	m.ready = false
	frame := m.frame
	m.frame = Frame{}
	return frame, true
}
