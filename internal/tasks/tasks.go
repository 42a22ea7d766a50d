// Package tasks defers failed attendance and audit writes to an asynq
// queue so a struggling database never stalls a scanning station.
package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/zainabhax0r-dev/facescan-pro/internal/attendance"
	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
)

// Task type names.
const (
	TypeAttendanceRecord = "attendance:record"
	TypeAuditAppend      = "audit:append"
)

// AttendancePayload is the serialized form of a deferred attendance write.
type AttendancePayload struct {
	IdentityID string    `json:"identity_id"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence"`
	Device     string    `json:"device"`
}

// AuditPayload is the serialized form of a deferred audit append.
type AuditPayload struct {
	SessionID   string                `json:"session_id"`
	Embedding   biometric.Embedding   `json:"embedding"`
	Result      biometric.MatchResult `json:"result"`
	Device      string                `json:"device"`
	AttemptedAt time.Time             `json:"attempted_at"`
}

// Dispatcher enqueues deferred writes. Enqueue failures are logged and
// swallowed: by the time the dispatcher is involved the synchronous path
// has already failed, and the loop must keep scanning either way.
type Dispatcher struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher on the given redis connection.
func NewDispatcher(redisOpt asynq.RedisClientOpt, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		client: asynq.NewClient(redisOpt),
		logger: logger.Named("task_dispatcher"),
	}
}

// Close releases the underlying client.
func (d *Dispatcher) Close() error {
	return d.client.Close()
}

// EnqueueAttendance schedules a deferred attendance write. The original
// capture timestamp rides along so the dedup window stays correct.
func (d *Dispatcher) EnqueueAttendance(event attendance.Event) {
	payload, err := json.Marshal(AttendancePayload{
		IdentityID: event.IdentityID,
		Timestamp:  event.Timestamp,
		Confidence: event.Confidence,
		Device:     event.Device,
	})
	if err != nil {
		d.logger.Error("failed to marshal attendance payload", zap.Error(err))
		return
	}
	d.enqueue(TypeAttendanceRecord, payload)
}

// EnqueueAudit schedules a deferred audit append.
func (d *Dispatcher) EnqueueAudit(sessionID string, embedding biometric.Embedding, result biometric.MatchResult, device string, at time.Time) {
	payload, err := json.Marshal(AuditPayload{
		SessionID:   sessionID,
		Embedding:   embedding,
		Result:      result,
		Device:      device,
		AttemptedAt: at,
	})
	if err != nil {
		d.logger.Error("failed to marshal audit payload", zap.Error(err))
		return
	}
	d.enqueue(TypeAuditAppend, payload)
}

func (d *Dispatcher) enqueue(taskType string, payload []byte) {
	_, err := d.client.Enqueue(
		asynq.NewTask(taskType, payload),
		asynq.ProcessIn(5*time.Second),
		asynq.MaxRetry(10),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		d.logger.Error("failed to enqueue deferred write", zap.String("task", taskType), zap.Error(err))
		return
	}
	d.logger.Info("deferred write enqueued", zap.String("task", taskType))
}

// Recorder re-runs the attendance decision for a deferred write so the
// per-day dedup still holds if another station recorded in the meantime.
type Recorder interface {
	Record(ctx context.Context, identityID string, confidence float64, device string, now time.Time) (attendance.Outcome, error)
}

// Auditor appends recognition log entries.
type Auditor interface {
	Append(ctx context.Context, sessionID string, embedding biometric.Embedding, result biometric.MatchResult, device string, at time.Time) error
}

// Handler processes deferred writes on the asynq worker side.
type Handler struct {
	recorder Recorder
	auditor  Auditor
	logger   *zap.Logger
}

// NewHandler creates a handler bound to the real stores.
func NewHandler(recorder Recorder, auditor Auditor, logger *zap.Logger) *Handler {
	return &Handler{recorder: recorder, auditor: auditor, logger: logger.Named("task_handler")}
}

// Register wires the handler into an asynq mux.
func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeAttendanceRecord, h.HandleAttendanceRecord)
	mux.HandleFunc(TypeAuditAppend, h.HandleAuditAppend)
}

// HandleAttendanceRecord replays a deferred attendance write.
func (h *Handler) HandleAttendanceRecord(ctx context.Context, t *asynq.Task) error {
	var payload AttendancePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("failed to unmarshal attendance payload", zap.Error(err))
		return err
	}

	outcome, err := h.recorder.Record(ctx, payload.IdentityID, payload.Confidence, payload.Device, payload.Timestamp)
	if err != nil {
		return err
	}
	h.logger.Info("deferred attendance write completed",
		zap.String("identity_id", payload.IdentityID),
		zap.String("status", string(outcome.Status)))
	return nil
}

// HandleAuditAppend replays a deferred audit append.
func (h *Handler) HandleAuditAppend(ctx context.Context, t *asynq.Task) error {
	var payload AuditPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("failed to unmarshal audit payload", zap.Error(err))
		return err
	}
	return h.auditor.Append(ctx, payload.SessionID, payload.Embedding, payload.Result, payload.Device, payload.AttemptedAt)
}
