package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/zainabhax0r-dev/facescan-pro/internal/attendance"
	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
)

type stubRecorder struct {
	calls   []AttendancePayload
	outcome attendance.Outcome
	err     error
}

func (s *stubRecorder) Record(ctx context.Context, identityID string, confidence float64, device string, now time.Time) (attendance.Outcome, error) {
	s.calls = append(s.calls, AttendancePayload{IdentityID: identityID, Confidence: confidence, Device: device, Timestamp: now})
	return s.outcome, s.err
}

type stubAuditor struct {
	calls []AuditPayload
	err   error
}

func (s *stubAuditor) Append(ctx context.Context, sessionID string, embedding biometric.Embedding, result biometric.MatchResult, device string, at time.Time) error {
	s.calls = append(s.calls, AuditPayload{SessionID: sessionID, Embedding: embedding, Result: result, Device: device, AttemptedAt: at})
	return s.err
}

func TestHandleAttendanceRecordReplaysOriginalTimestamp(t *testing.T) {
	recorder := &stubRecorder{outcome: attendance.Outcome{Status: attendance.StatusRecorded}}
	h := NewHandler(recorder, &stubAuditor{}, zap.NewNop())

	captured := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	payload, err := json.Marshal(AttendancePayload{
		IdentityID: "alice",
		Timestamp:  captured,
		Confidence: 0.91,
		Device:     "gate-1",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	task := asynq.NewTask(TypeAttendanceRecord, payload)
	if err := h.HandleAttendanceRecord(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recorder.calls) != 1 {
		t.Fatalf("expected 1 record call, got %d", len(recorder.calls))
	}
	if !recorder.calls[0].Timestamp.Equal(captured) {
		t.Fatalf("expected original capture timestamp, got %v", recorder.calls[0].Timestamp)
	}
}

func TestHandleAttendanceRecordPropagatesErrorForRetry(t *testing.T) {
	recorder := &stubRecorder{err: errors.New("db still down")}
	h := NewHandler(recorder, &stubAuditor{}, zap.NewNop())

	payload, _ := json.Marshal(AttendancePayload{IdentityID: "alice"})
	task := asynq.NewTask(TypeAttendanceRecord, payload)
	if err := h.HandleAttendanceRecord(context.Background(), task); err == nil {
		t.Fatal("expected error so asynq retries the task")
	}
}

func TestHandleAttendanceRecordRejectsBadPayload(t *testing.T) {
	h := NewHandler(&stubRecorder{}, &stubAuditor{}, zap.NewNop())

	task := asynq.NewTask(TypeAttendanceRecord, []byte("{not json"))
	if err := h.HandleAttendanceRecord(context.Background(), task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestHandleAuditAppend(t *testing.T) {
	auditor := &stubAuditor{}
	h := NewHandler(&stubRecorder{}, auditor, zap.NewNop())

	payload, err := json.Marshal(AuditPayload{
		SessionID: "sess-1",
		Embedding: biometric.Embedding{1, 0},
		Result:    biometric.MatchResult{IdentityID: "alice", Score: 0.9, Matched: true},
		Device:    "gate-1",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	task := asynq.NewTask(TypeAuditAppend, payload)
	if err := h.HandleAuditAppend(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(auditor.calls) != 1 {
		t.Fatalf("expected 1 append call, got %d", len(auditor.calls))
	}
	if auditor.calls[0].Result.IdentityID != "alice" {
		t.Fatalf("unexpected result: %+v", auditor.calls[0].Result)
	}
}
