package liveness

import (
	"gonum.org/v1/gonum/stat"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
)

// Config holds the tunable thresholds of the evaluator.
type Config struct {
	BlinkEARThreshold float64 // eye aspect ratio below this counts as a blink
	BlinkWindow       int     // blink history capacity
	BlinkMinCount     int     // blinks required inside the window

	MovementWindow int     // movement history capacity
	MovementMin    float64 // rolling average below this is sensor noise
	MovementMax    float64 // rolling average above this is an implausible jump

	TextureVarianceMin float64 // gray variance at or below this looks printed
	DepthDivergenceMin float64 // profile asymmetry at or below this looks flat

	BlinkWeight    float64
	MovementWeight float64
	TextureWeight  float64
	DepthWeight    float64

	LiveThreshold float64
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		BlinkEARThreshold:  0.2,
		BlinkWindow:        10,
		BlinkMinCount:      2,
		MovementWindow:     20,
		MovementMin:        3,
		MovementMax:        50,
		TextureVarianceMin: 100,
		DepthDivergenceMin: 50,
		BlinkWeight:        0.3,
		MovementWeight:     0.3,
		TextureWeight:      0.2,
		DepthWeight:        0.2,
		LiveThreshold:      0.5,
	}
}

// Observation is one frame's worth of pipeline output.
type Observation struct {
	Landmarks biometric.LandmarkSet
	Box       biometric.BoundingBox
	Crop      biometric.Crop
}

// Verdict is the per-frame liveness outcome with its component signals.
type Verdict struct {
	Live  bool    `json:"live"`
	Score float64 `json:"score"`

	BlinkDetected   bool `json:"blink_detected"`
	HeadMovement    bool `json:"head_movement"`
	TextureVariance bool `json:"texture_variance"`
	DepthEstimate   bool `json:"depth_estimate"`
}

// Evaluator advances a Session one frame at a time. It is stateless
// itself; all history lives in the Session.
type Evaluator struct {
	cfg Config
}

// NewEvaluator creates an evaluator with the given thresholds.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// NewSession creates a session sized for this evaluator's windows.
func (e *Evaluator) NewSession() *Session {
	return NewSession(e.cfg.BlinkWindow, e.cfg.MovementWindow)
}

// Evaluate consumes one observation, updates the session history and
// returns the weighted liveness verdict for that frame.
func (e *Evaluator) Evaluate(sess *Session, obs Observation) Verdict {
	var v Verdict

	v.BlinkDetected = e.blinkCheck(sess, obs.Landmarks)
	v.HeadMovement = e.movementCheck(sess, obs.Box)
	v.TextureVariance = e.textureCheck(obs.Crop)
	v.DepthEstimate = e.depthCheck(obs.Landmarks, obs.Crop.Width)

	v.Score = e.cfg.BlinkWeight*boolScore(v.BlinkDetected) +
		e.cfg.MovementWeight*boolScore(v.HeadMovement) +
		e.cfg.TextureWeight*boolScore(v.TextureVariance) +
		e.cfg.DepthWeight*boolScore(v.DepthEstimate)
	v.Live = v.Score >= e.cfg.LiveThreshold

	sess.remember(obs.Box, obs.Landmarks)
	return v
}

// blinkCheck computes the eye aspect ratio for both eyes, pushes whether
// either dipped below the blink threshold, and reports whether enough
// blinks landed inside the window.
func (e *Evaluator) blinkCheck(sess *Session, landmarks biometric.LandmarkSet) bool {
	left := eyeAspectRatio(landmarks.Subset(biometric.LeftEyeRange))
	right := eyeAspectRatio(landmarks.Subset(biometric.RightEyeRange))
	sess.pushBlink(left < e.cfg.BlinkEARThreshold || right < e.cfg.BlinkEARThreshold)

	var count int
	for _, blinked := range sess.blinkHistory {
		if blinked {
			count++
		}
	}
	return count >= e.cfg.BlinkMinCount
}

// eyeAspectRatio is (v1 + v2) / (2h) over an eye subset. Subsets too short
// to measure report a wide-open eye so they never register a blink.
func eyeAspectRatio(eye []biometric.Point) float64 {
	n := len(eye)
	if n < 6 {
		return 1
	}
	horizontal := eye[0].Dist(eye[n-1])
	if horizontal == 0 {
		return 1
	}
	v1 := eye[1].Dist(eye[n-2])
	v2 := eye[2].Dist(eye[n-3])
	return (v1 + v2) / (2 * horizontal)
}

// movementCheck pushes the displacement between the current and previous
// bounding box centers and accepts a rolling average inside the plausible
// band: above sensor noise, below teleporting.
func (e *Evaluator) movementCheck(sess *Session, box biometric.BoundingBox) bool {
	if sess.prevBox != nil {
		sess.pushMovement(box.Center().Dist(sess.prevBox.Center()))
	}
	if len(sess.movementHistory) == 0 {
		return false
	}
	avg := stat.Mean(sess.movementHistory, nil)
	return avg > e.cfg.MovementMin && avg < e.cfg.MovementMax
}

// textureCheck flags artificially flat crops. Printed or re-displayed
// faces show much lower grayscale variance than live skin.
func (e *Evaluator) textureCheck(crop biometric.Crop) bool {
	gray := crop.Gray()
	if len(gray) == 0 {
		return false
	}
	return stat.PopVariance(gray, nil) > e.cfg.TextureVarianceMin
}

// depthCheck sums the point-wise divergence between the contour subset and
// the mirrored right-profile subset. A flat image mirrors onto itself
// almost exactly and scores low.
func (e *Evaluator) depthCheck(landmarks biometric.LandmarkSet, cropWidth int) bool {
	left := landmarks.Subset(biometric.ContourRange)
	right := landmarks.Subset(biometric.RightProfileRange)
	if len(left) == 0 || len(right) == 0 {
		return false
	}

	width := float64(cropWidth)
	if width == 0 {
		width = float64(biometric.CropSize)
	}

	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	var sum float64
	for i := 0; i < n; i++ {
		mirrored := biometric.Point{X: width - right[i].X, Y: right[i].Y}
		sum += left[i].Dist(mirrored)
	}
	return sum > e.cfg.DepthDivergenceMin
}

func boolScore(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
