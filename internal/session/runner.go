// Package session runs the per-station capture loop: a periodic sampler
// that pulls a frame, runs detection, liveness and either enrollment or
// matching, with all mutable state owned by the loop goroutine.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zainabhax0r-dev/facescan-pro/internal/attendance"
	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
	"github.com/zainabhax0r-dev/facescan-pro/internal/detector"
	"github.com/zainabhax0r-dev/facescan-pro/internal/enroll"
	"github.com/zainabhax0r-dev/facescan-pro/internal/feature"
	"github.com/zainabhax0r-dev/facescan-pro/internal/framesource"
	"github.com/zainabhax0r-dev/facescan-pro/internal/liveness"
	"github.com/zainabhax0r-dev/facescan-pro/internal/match"
)

// Config holds the sampling loop parameters.
type Config struct {
	Interval       time.Duration // one capture-and-process cycle per tick
	DetectTimeout  time.Duration // bound on the detector backend call
	PersistTimeout time.Duration // bound on store and audit calls
}

// DefaultConfig returns the production loop parameters.
func DefaultConfig() Config {
	return Config{
		Interval:       600 * time.Millisecond,
		DetectTimeout:  2 * time.Second,
		PersistTimeout: 2 * time.Second,
	}
}

// TemplateWriter persists finished enrollment templates.
type TemplateWriter interface {
	Upsert(ctx context.Context, identityID string, tpl biometric.Template) error
}

// GalleryInvalidator drops the cached gallery snapshot after enrollment.
type GalleryInvalidator interface {
	Invalidate(ctx context.Context)
}

// AttendanceRecorder applies the attendance decision for a match.
type AttendanceRecorder interface {
	Record(ctx context.Context, identityID string, confidence float64, device string, now time.Time) (attendance.Outcome, error)
}

// AuditLog records every match attempt.
type AuditLog interface {
	Append(ctx context.Context, sessionID string, embedding biometric.Embedding, result biometric.MatchResult, device string, at time.Time) error
}

// Dispatcher queues deferred writes when the synchronous path fails.
type Dispatcher interface {
	EnqueueAttendance(event attendance.Event)
	EnqueueAudit(sessionID string, embedding biometric.Embedding, result biometric.MatchResult, device string, at time.Time)
}

// Params carries everything a runner needs.
type Params struct {
	ID         string
	Mode       Mode
	IdentityID string
	Device     string
	Config     Config

	Source    framesource.Source
	Detector  detector.Client
	Evaluator *liveness.Evaluator

	Aggregator *enroll.Aggregator // enroll mode
	Engine     *match.Engine      // scan mode
	Gallery    match.Gallery      // scan mode snapshot

	Templates TemplateWriter
	Galleries GalleryInvalidator
	Recorder  AttendanceRecorder
	Audit     AuditLog
	Dispatch  Dispatcher

	Logger *zap.Logger
}

// Runner owns one capture session. All pipeline state is mutated only by
// the loop goroutine; Status hands out copies under a lock.
type Runner struct {
	p   Params
	cfg Config

	lsession *liveness.Session
	logger   *zap.Logger
	now      func() time.Time

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	status Status
}

// NewRunner creates a runner; Start begins processing.
func NewRunner(p Params) *Runner {
	r := &Runner{
		p:        p,
		cfg:      p.Config,
		lsession: p.Evaluator.NewSession(),
		logger:   p.Logger.Named("session").With(zap.String("session_id", p.ID), zap.String("mode", string(p.Mode))),
		now:      time.Now,
		done:     make(chan struct{}),
	}
	r.status = Status{
		ID:         p.ID,
		Mode:       p.Mode,
		IdentityID: p.IdentityID,
		Device:     p.Device,
	}
	if p.Aggregator != nil {
		r.status.EnrollTarget = p.Aggregator.Target()
	}
	return r
}

// Start launches the periodic sampling loop.
func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.lsession.Reset()
	r.update(func(s *Status) { s.StartedAt = r.now() })

	go r.loop(ctx)
}

// Stop synchronously halts the loop and releases session state. No tick
// started before cancellation can mutate state afterwards: the loop
// processes ticks inline and Stop waits for it to exit.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		if r.cancel != nil {
			r.cancel()
		}
		<-r.done
		r.lsession.Reset()
		r.update(func(s *Status) { s.Stopped = true })
	})
}

// Status returns a snapshot of the session.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Runner) update(fn func(*Status)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.status)
}

// loop runs one capture-and-process cycle per tick. Processing happens
// inline, so a cycle that overruns simply coalesces the missed ticks:
// frames are skipped, never queued.
func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			r.processTick(ctx)
		}
	}
}

func (r *Runner) processTick(ctx context.Context) {
	frame, ok := r.p.Source.Next()
	if !ok {
		// Not ready is a skip, not an error.
		r.update(func(s *Status) { s.FramesSkipped++ })
		return
	}

	detectCtx, cancel := context.WithTimeout(ctx, r.cfg.DetectTimeout)
	det, err := r.p.Detector.Detect(detectCtx, frame.Data)
	cancel()
	if err != nil {
		r.logger.Warn("detection failed", zap.Error(err))
		r.update(func(s *Status) { s.LastError = err.Error() })
		return
	}
	if !det.FaceFound {
		r.update(func(s *Status) { s.DetectionMisses++ })
		return
	}

	embedding := feature.Extract(det.Crop, det.Landmarks)
	verdict := r.p.Evaluator.Evaluate(r.lsession, liveness.Observation{
		Landmarks: det.Landmarks,
		Box:       det.Box,
		Crop:      det.Crop,
	})
	r.update(func(s *Status) {
		s.FramesProcessed++
		v := verdict
		s.LastLiveness = &v
		s.LastError = ""
	})

	switch r.p.Mode {
	case ModeEnroll:
		r.enrollStep(ctx, det, embedding, verdict)
	case ModeScan:
		r.scanStep(ctx, embedding, verdict)
	}
}

func (r *Runner) enrollStep(ctx context.Context, det *detector.Detection, embedding biometric.Embedding, verdict liveness.Verdict) {
	r.p.Aggregator.ObserveLandmarks(det.Landmarks)
	accepted, complete := r.p.Aggregator.Add(embedding, verdict, det.Confidence)
	if accepted {
		r.update(func(s *Status) { s.EnrollAccepted = r.p.Aggregator.Count() })
	}
	if !complete {
		return
	}

	tpl, err := r.p.Aggregator.Template(r.now())
	if err != nil {
		r.logger.Error("template reduction failed", zap.Error(err))
		r.update(func(s *Status) { s.LastError = err.Error() })
		return
	}

	persistCtx, cancel := context.WithTimeout(ctx, r.cfg.PersistTimeout)
	err = r.p.Templates.Upsert(persistCtx, r.p.IdentityID, tpl)
	cancel()
	if err != nil {
		// No partial templates: drop the accumulation, the caller
		// restarts capture.
		r.p.Aggregator.Discard()
		r.logger.Error("template write failed, enrollment restarted", zap.Error(err))
		r.update(func(s *Status) {
			s.EnrollAccepted = 0
			s.LastError = err.Error()
		})
		return
	}

	invalidateCtx, cancel := context.WithTimeout(ctx, r.cfg.PersistTimeout)
	r.p.Galleries.Invalidate(invalidateCtx)
	cancel()

	r.logger.Info("enrollment complete", zap.String("identity_id", r.p.IdentityID))
	r.update(func(s *Status) { s.EnrollComplete = true })
	// The session has done its job; halt the sampler.
	r.cancel()
}

func (r *Runner) scanStep(ctx context.Context, embedding biometric.Embedding, verdict liveness.Verdict) {
	result, err := r.p.Engine.Match(embedding, r.p.Gallery)
	if err != nil {
		// Dimension mismatch is a contract violation, not a skip.
		r.logger.Error("gallery match failed", zap.Error(err))
		r.update(func(s *Status) { s.LastError = err.Error() })
		return
	}

	now := r.now()
	auditCtx, cancel := context.WithTimeout(ctx, r.cfg.PersistTimeout)
	err = r.p.Audit.Append(auditCtx, r.p.ID, embedding, result, r.p.Device, now)
	cancel()
	if err != nil {
		// Audit failures never halt scanning; hand the entry to the
		// queue and move on.
		r.logger.Warn("audit append failed, deferring", zap.Error(err))
		r.p.Dispatch.EnqueueAudit(r.p.ID, embedding, result, r.p.Device, now)
	}

	r.update(func(s *Status) {
		res := result
		s.LastMatch = &res
	})

	if !result.Matched {
		return
	}
	if !verdict.Live {
		r.update(func(s *Status) { s.LastOutcome = OutcomeLivenessRejected })
		return
	}

	recordCtx, cancel := context.WithTimeout(ctx, r.cfg.PersistTimeout)
	outcome, err := r.p.Recorder.Record(recordCtx, result.IdentityID, result.Score, r.p.Device, now)
	cancel()
	if err != nil {
		r.logger.Warn("attendance write failed, deferring", zap.Error(err))
		r.p.Dispatch.EnqueueAttendance(attendance.Event{
			IdentityID: result.IdentityID,
			Timestamp:  now,
			Confidence: result.Score,
			Device:     r.p.Device,
		})
		r.update(func(s *Status) {
			s.AttendancePending = true
			s.LastOutcome = OutcomeAttendancePending
		})
		return
	}

	r.update(func(s *Status) {
		s.AttendancePending = false
		s.LastOutcome = string(outcome.Status)
	})
}
