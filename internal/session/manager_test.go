package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/zainabhax0r-dev/facescan-pro/internal/enroll"
	"github.com/zainabhax0r-dev/facescan-pro/internal/liveness"
	"github.com/zainabhax0r-dev/facescan-pro/internal/match"
)

type stubResolver struct {
	known map[string]bool
	err   error
}

func (r *stubResolver) Exists(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.known[id], nil
}

type stubGallerySource struct {
	gallery match.Gallery
	err     error
}

func (s *stubGallerySource) Snapshot(_ context.Context) (match.Gallery, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.gallery, nil
}

func newTestManager(resolver IdentityResolver, galleries GallerySource) *Manager {
	return NewManager(Dependencies{
		Detector:    &stubDetector{detection: testDetection()},
		Evaluator:   liveness.NewEvaluator(liveness.DefaultConfig()),
		EnrollCfg:   enroll.Config{TargetSamples: 3, MinConfidence: 0.5},
		MatchCfg:    match.Config{Threshold: 0.6},
		Identities:  resolver,
		Galleries:   galleries,
		Templates:   &stubTemplateWriter{},
		Invalidator: &stubInvalidator{},
		Recorder:    &stubRecorder{},
		Audit:       &stubAudit{},
		Dispatch:    &stubDispatcher{},
		RunnerCfg: Config{
			Interval:       time.Millisecond,
			DetectTimeout:  time.Second,
			PersistTimeout: time.Second,
		},
		Logger: zap.NewNop(),
	})
}

func TestManagerStartEnrollUnknownIdentity(t *testing.T) {
	m := newTestManager(&stubResolver{known: map[string]bool{}}, &stubGallerySource{})

	_, err := m.StartEnroll(context.Background(), "ghost", "kiosk-1")
	if err == nil {
		t.Fatal("expected error for unknown identity")
	}
	if m.Count() != 0 {
		t.Fatalf("manager tracked %d sessions after failed start", m.Count())
	}
}

func TestManagerStartEnrollResolverFailure(t *testing.T) {
	m := newTestManager(&stubResolver{err: errors.New("database down")}, &stubGallerySource{})

	_, err := m.StartEnroll(context.Background(), "emp-042", "kiosk-1")
	if err == nil {
		t.Fatal("expected resolver error to propagate")
	}
}

func TestManagerStartScanSnapshotFailure(t *testing.T) {
	m := newTestManager(&stubResolver{}, &stubGallerySource{err: errors.New("cache and store down")})

	_, err := m.StartScan(context.Background(), "gate-a")
	if err == nil {
		t.Fatal("expected snapshot error to propagate")
	}
	if m.Count() != 0 {
		t.Fatalf("manager tracked %d sessions after failed start", m.Count())
	}
}

func TestManagerSessionLifecycle(t *testing.T) {
	m := newTestManager(&stubResolver{known: map[string]bool{"emp-042": true}}, &stubGallerySource{})
	defer m.StopAll()

	st, err := m.StartEnroll(context.Background(), "emp-042", "kiosk-1")
	if err != nil {
		t.Fatalf("start enroll: %v", err)
	}
	if st.ID == "" || st.Mode != ModeEnroll || st.IdentityID != "emp-042" {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.EnrollTarget != 3 {
		t.Fatalf("enroll target = %d, want 3", st.EnrollTarget)
	}
	if m.Count() != 1 {
		t.Fatalf("session count = %d, want 1", m.Count())
	}

	if err := m.OfferFrame(st.ID, []byte("jpeg"), time.Now()); err != nil {
		t.Fatalf("offer frame: %v", err)
	}

	got, err := m.Get(st.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.ID != st.ID {
		t.Fatalf("got session %q, want %q", got.ID, st.ID)
	}

	stopped, err := m.Stop(st.ID)
	if err != nil {
		t.Fatalf("stop session: %v", err)
	}
	if !stopped.Stopped {
		t.Fatal("stopped status not reported")
	}
	if m.Count() != 0 {
		t.Fatalf("session count after stop = %d, want 0", m.Count())
	}

	if _, err := m.Get(st.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("get after stop = %v, want ErrSessionNotFound", err)
	}
}

func TestManagerUnknownSessionOperations(t *testing.T) {
	m := newTestManager(&stubResolver{}, &stubGallerySource{})

	if err := m.OfferFrame("nope", []byte("jpeg"), time.Now()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("offer frame = %v, want ErrSessionNotFound", err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("get = %v, want ErrSessionNotFound", err)
	}
	if _, err := m.Stop("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("stop = %v, want ErrSessionNotFound", err)
	}
}

func TestManagerStopAll(t *testing.T) {
	m := newTestManager(&stubResolver{known: map[string]bool{"emp-042": true}}, &stubGallerySource{})

	if _, err := m.StartScan(context.Background(), "gate-a"); err != nil {
		t.Fatalf("start scan: %v", err)
	}
	if _, err := m.StartEnroll(context.Background(), "emp-042", "kiosk-1"); err != nil {
		t.Fatalf("start enroll: %v", err)
	}
	if m.Count() != 2 {
		t.Fatalf("session count = %d, want 2", m.Count())
	}

	m.StopAll()

	if m.Count() != 0 {
		t.Fatalf("session count after stop all = %d, want 0", m.Count())
	}
}
