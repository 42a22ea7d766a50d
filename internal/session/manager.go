package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zainabhax0r-dev/facescan-pro/internal/detector"
	"github.com/zainabhax0r-dev/facescan-pro/internal/enroll"
	"github.com/zainabhax0r-dev/facescan-pro/internal/framesource"
	"github.com/zainabhax0r-dev/facescan-pro/internal/liveness"
	"github.com/zainabhax0r-dev/facescan-pro/internal/logging"
	"github.com/zainabhax0r-dev/facescan-pro/internal/match"
)

var (
	// ErrSessionNotFound is returned for operations on unknown session IDs.
	ErrSessionNotFound = errors.New("session not found")
)

// IdentityResolver confirms an identity exists before enrollment starts.
type IdentityResolver interface {
	Exists(ctx context.Context, identityID string) (bool, error)
}

// GallerySource loads the match gallery when a scan session starts.
type GallerySource interface {
	Snapshot(ctx context.Context) (match.Gallery, error)
}

// Dependencies are the shared backends the manager wires into each runner.
type Dependencies struct {
	Detector   detector.Client
	Evaluator  *liveness.Evaluator
	EnrollCfg  enroll.Config
	MatchCfg   match.Config
	Identities IdentityResolver
	Galleries  GallerySource

	Templates   TemplateWriter
	Invalidator GalleryInvalidator
	Recorder    AttendanceRecorder
	Audit       AuditLog
	Dispatch    Dispatcher

	RunnerCfg Config
	Logger    *zap.Logger
}

type entry struct {
	runner  *Runner
	mailbox *framesource.Mailbox
}

// Manager tracks live sessions and routes frames to them.
type Manager struct {
	deps Dependencies

	mu       sync.Mutex
	sessions map[string]entry
}

// NewManager creates an empty session registry.
func NewManager(deps Dependencies) *Manager {
	return &Manager{
		deps:     deps,
		sessions: make(map[string]entry),
	}
}

// StartEnroll opens an enrollment session for a known identity.
func (m *Manager) StartEnroll(ctx context.Context, identityID, device string) (Status, error) {
	const operation = "session_start_enroll"

	exists, err := m.deps.Identities.Exists(ctx, identityID)
	if err != nil {
		return Status{}, logging.NewOperationError(operation, "", err)
	}
	if !exists {
		return Status{}, logging.NewOperationError(operation, "", errors.New("identity not enrolled in roster"))
	}

	return m.start(Params{
		ID:         uuid.NewString(),
		Mode:       ModeEnroll,
		IdentityID: identityID,
		Device:     device,
		Aggregator: enroll.NewAggregator(m.deps.EnrollCfg),
	}), nil
}

// StartScan opens a scan session against the current gallery snapshot.
// The snapshot is fixed for the session lifetime; restarting the session
// picks up newer enrollments.
func (m *Manager) StartScan(ctx context.Context, device string) (Status, error) {
	const operation = "session_start_scan"

	snapshot, err := m.deps.Galleries.Snapshot(ctx)
	if err != nil {
		return Status{}, logging.NewOperationError(operation, "", err)
	}

	return m.start(Params{
		ID:      uuid.NewString(),
		Mode:    ModeScan,
		Device:  device,
		Engine:  match.NewEngine(m.deps.MatchCfg),
		Gallery: snapshot,
	}), nil
}

func (m *Manager) start(p Params) Status {
	mailbox := framesource.NewMailbox()
	p.Config = m.deps.RunnerCfg
	p.Source = mailbox
	p.Detector = m.deps.Detector
	p.Evaluator = m.deps.Evaluator
	p.Templates = m.deps.Templates
	p.Galleries = m.deps.Invalidator
	p.Recorder = m.deps.Recorder
	p.Audit = m.deps.Audit
	p.Dispatch = m.deps.Dispatch
	p.Logger = m.deps.Logger

	runner := NewRunner(p)

	m.mu.Lock()
	m.sessions[p.ID] = entry{runner: runner, mailbox: mailbox}
	m.mu.Unlock()

	runner.Start()
	return runner.Status()
}

// OfferFrame hands the latest frame to a session. Older unprocessed
// frames are replaced, never queued.
func (m *Manager) OfferFrame(id string, data []byte, capturedAt time.Time) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	e.mailbox.Offer(framesource.Frame{Data: data, CapturedAt: capturedAt})
	return nil
}

// Get returns the current snapshot of a session.
func (m *Manager) Get(id string) (Status, error) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return Status{}, ErrSessionNotFound
	}
	return e.runner.Status(), nil
}

// Stop halts a session and removes it from the registry.
func (m *Manager) Stop(id string) (Status, error) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return Status{}, ErrSessionNotFound
	}
	e.runner.Stop()
	return e.runner.Status(), nil
}

// StopAll halts every session, used on server shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	entries := make([]entry, 0, len(m.sessions))
	for id, e := range m.sessions {
		entries = append(entries, e)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, e := range entries {
		e.runner.Stop()
	}
}

// Count reports how many sessions are live.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
