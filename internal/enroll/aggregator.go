// Package enroll accumulates accepted captures during enrollment and
// reduces them to the single canonical template stored for an identity.
package enroll

import (
	"errors"
	"time"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
	"github.com/zainabhax0r-dev/facescan-pro/internal/liveness"
)

// Config controls how many captures an enrollment needs and how confident
// the detector must be before a capture counts.
type Config struct {
	TargetSamples int
	MinConfidence float64
}

// DefaultConfig returns the production enrollment policy.
func DefaultConfig() Config {
	return Config{
		TargetSamples: 15,
		MinConfidence: 0.8,
	}
}

// ErrIncomplete is returned when a template is requested before the target
// sample count has been reached.
var ErrIncomplete = errors.New("enrollment has not collected enough samples")

// Aggregator collects accepted embeddings for one enrollment in progress.
// It is owned by a single session loop and is not safe for concurrent use.
type Aggregator struct {
	cfg Config

	samples       []biometric.Embedding
	lastLandmarks biometric.LandmarkSet
	lastLiveness  float64
}

// NewAggregator creates an empty aggregator.
func NewAggregator(cfg Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Add offers one capture. It is accepted only when the liveness verdict is
// live and the detector confidence clears the configured minimum. The
// returned flags report whether this sample was taken and whether the
// target count is now reached.
func (a *Aggregator) Add(embedding biometric.Embedding, verdict liveness.Verdict, confidence float64) (accepted, complete bool) {
	if a.Complete() {
		return false, true
	}
	if !verdict.Live || confidence < a.cfg.MinConfidence {
		return false, false
	}

	a.samples = append(a.samples, embedding.Clone())
	a.lastLiveness = verdict.Score
	return true, a.Complete()
}

// ObserveLandmarks records the most recent landmark snapshot, kept as
// provenance on the finished template.
func (a *Aggregator) ObserveLandmarks(landmarks biometric.LandmarkSet) {
	a.lastLandmarks = landmarks.Clone()
}

// Count reports how many samples have been accepted so far.
func (a *Aggregator) Count() int {
	return len(a.samples)
}

// Target reports how many accepted samples the enrollment needs.
func (a *Aggregator) Target() int {
	return a.cfg.TargetSamples
}

// Complete reports whether the target sample count has been reached.
func (a *Aggregator) Complete() bool {
	return len(a.samples) >= a.cfg.TargetSamples
}

// Template reduces the accepted samples to the canonical template: the
// component-wise mean of the captures, deliberately not re-normalized,
// with the last landmark snapshot and liveness score as provenance.
func (a *Aggregator) Template(now time.Time) (biometric.Template, error) {
	if !a.Complete() {
		return biometric.Template{}, ErrIncomplete
	}
	mean, err := biometric.Mean(a.samples)
	if err != nil {
		return biometric.Template{}, err
	}
	return biometric.Template{
		Embedding:     mean,
		Landmarks:     a.lastLandmarks.Clone(),
		LivenessScore: a.lastLiveness,
		CapturedAt:    now,
	}, nil
}

// Discard drops the in-progress accumulation. Called when persistence
// fails so no partial template survives; the caller restarts capture.
func (a *Aggregator) Discard() {
	a.samples = nil
	a.lastLandmarks = nil
	a.lastLiveness = 0
}
