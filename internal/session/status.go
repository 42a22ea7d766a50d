package session

import (
	"time"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
	"github.com/zainabhax0r-dev/facescan-pro/internal/liveness"
)

// Mode selects what a capture session is for.
type Mode string

const (
	// ModeEnroll collects accepted captures into a new template.
	ModeEnroll Mode = "enroll"
	// ModeScan matches captures against the gallery for attendance.
	ModeScan Mode = "scan"
)

// Outcome strings reported in Status.LastOutcome beyond the attendance
// statuses themselves.
const (
	OutcomeLivenessRejected  = "liveness_rejected"
	OutcomeAttendancePending = "attendance_pending"
)

// Status is a point-in-time snapshot of a session, safe to hand out
// while the loop keeps running.
type Status struct {
	ID         string    `json:"id"`
	Mode       Mode      `json:"mode"`
	IdentityID string    `json:"identity_id,omitempty"`
	Device     string    `json:"device"`
	StartedAt  time.Time `json:"started_at"`

	FramesProcessed int `json:"frames_processed"`
	FramesSkipped   int `json:"frames_skipped"`
	DetectionMisses int `json:"detection_misses"`

	LastLiveness *liveness.Verdict `json:"last_liveness,omitempty"`

	EnrollAccepted int  `json:"enroll_accepted,omitempty"`
	EnrollTarget   int  `json:"enroll_target,omitempty"`
	EnrollComplete bool `json:"enroll_complete,omitempty"`

	LastMatch         *biometric.MatchResult `json:"last_match,omitempty"`
	LastOutcome       string                 `json:"last_outcome,omitempty"`
	AttendancePending bool                   `json:"attendance_pending,omitempty"`

	LastError string `json:"last_error,omitempty"`
	Stopped   bool   `json:"stopped"`
}
