package biometric

import "time"

// Template is the canonical stored embedding for one enrolled identity,
// together with capture provenance. One template exists per identity;
// re-enrollment overwrites it.
type Template struct {
	Embedding     Embedding   `json:"embedding"`
	Landmarks     LandmarkSet `json:"landmarks"`
	LivenessScore float64     `json:"liveness_score"`
	CapturedAt    time.Time   `json:"captured_at"`
}

// MatchResult is the outcome of comparing a live embedding against the
// gallery. IdentityID is empty when nothing matched.
type MatchResult struct {
	IdentityID string  `json:"identity_id"`
	Score      float64 `json:"score"`
	Matched    bool    `json:"matched"`
}
