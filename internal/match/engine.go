// Package match compares a live embedding against the enrolled gallery
// and applies the acceptance threshold.
package match

import (
	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
)

// Config holds the matching policy. The threshold is deployment specific:
// production values range from a permissive 0.38 up to a strict 0.65
// depending on capture quality, so it is never hard-coded.
type Config struct {
	Threshold float64
}

// Entry pairs an enrolled identity with its template.
type Entry struct {
	IdentityID string             `json:"identity_id"`
	Template   biometric.Template `json:"template"`
}

// Gallery is the ordered, read-only snapshot of enrolled templates used
// for one scan session. Order matters: ties keep the first-seen entry.
type Gallery []Entry

// Engine performs linear-scan cosine matching over a gallery snapshot.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given policy.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Threshold reports the configured acceptance threshold.
func (e *Engine) Threshold() float64 {
	return e.cfg.Threshold
}

// Match scans every gallery entry, tracks the single best similarity and
// accepts it when the score reaches the threshold (inclusive). An empty
// gallery deterministically yields no match with score 0. A template whose
// dimension differs from the probe is a contract violation and fails fast.
func (e *Engine) Match(probe biometric.Embedding, gallery Gallery) (biometric.MatchResult, error) {
	var result biometric.MatchResult

	for _, entry := range gallery {
		sim, err := biometric.Cosine(probe, entry.Template.Embedding)
		if err != nil {
			return biometric.MatchResult{}, err
		}
		// Strictly greater: ties keep the first-seen entry.
		if result.IdentityID == "" || sim > result.Score {
			result.IdentityID = entry.IdentityID
			result.Score = sim
		}
	}

	result.Matched = result.IdentityID != "" && result.Score >= e.cfg.Threshold
	if !result.Matched {
		result.IdentityID = ""
	}
	return result, nil
}
