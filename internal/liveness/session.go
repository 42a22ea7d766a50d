// Package liveness scores whether a capture session is looking at a live
// person rather than a printed photo or replayed screen. It combines
// blink, head movement, texture and depth signals over the recent history
// of a single capture session.
package liveness

import "github.com/zainabhax0r-dev/facescan-pro/internal/biometric"

// Session holds the per-capture-session history the evaluator needs.
// A session is exclusively owned by one processing loop; independent
// stations each get their own and never share one.
type Session struct {
	prevBox       *biometric.BoundingBox
	prevLandmarks biometric.LandmarkSet

	blinkHistory    []bool
	movementHistory []float64

	blinkCapacity    int
	movementCapacity int
}

// NewSession creates an empty session with the given history capacities.
func NewSession(blinkCapacity, movementCapacity int) *Session {
	return &Session{
		blinkCapacity:    blinkCapacity,
		movementCapacity: movementCapacity,
	}
}

// Reset clears all buffered history. Called at session start and stop.
func (s *Session) Reset() {
	s.prevBox = nil
	s.prevLandmarks = nil
	s.blinkHistory = s.blinkHistory[:0]
	s.movementHistory = s.movementHistory[:0]
}

func (s *Session) pushBlink(blinked bool) {
	s.blinkHistory = append(s.blinkHistory, blinked)
	if len(s.blinkHistory) > s.blinkCapacity {
		s.blinkHistory = s.blinkHistory[len(s.blinkHistory)-s.blinkCapacity:]
	}
}

func (s *Session) pushMovement(displacement float64) {
	s.movementHistory = append(s.movementHistory, displacement)
	if len(s.movementHistory) > s.movementCapacity {
		s.movementHistory = s.movementHistory[len(s.movementHistory)-s.movementCapacity:]
	}
}

func (s *Session) remember(box biometric.BoundingBox, landmarks biometric.LandmarkSet) {
	b := box
	s.prevBox = &b
	s.prevLandmarks = landmarks.Clone()
}
