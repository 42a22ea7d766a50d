package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
)

// RecognitionLogRepository appends to the recognition audit trail.
type RecognitionLogRepository struct {
	db *gorm.DB
	retryPolicy
}

// NewRecognitionLogRepository creates a new repository instance.
func NewRecognitionLogRepository(db *gorm.DB, logger *zap.Logger) *RecognitionLogRepository {
	return &RecognitionLogRepository{db: db, retryPolicy: defaultRetryPolicy(logger.Named("recognition_log_repository"))}
}

// Append records one match attempt. Every attempt is logged, matched or
// not; the entry keeps the attempted embedding for offline review.
func (r *RecognitionLogRepository) Append(ctx context.Context, sessionID string, embedding biometric.Embedding, result biometric.MatchResult, device string, at time.Time) error {
	encoded, err := json.Marshal(embedding)
	if err != nil {
		return err
	}

	record := RecognitionLog{
		SessionID:  sessionID,
		IdentityID: result.IdentityID,
		Embedding:  encoded,
		Similarity: result.Score,
		Success:    result.Matched,
		Device:     device,
		CreatedAt:  at,
	}
	return r.executeWithRetry(ctx, "audit.append", sessionID, func() error {
		return r.db.WithContext(ctx).Create(&record).Error
	})
}

// MetricsAggregation is the raw rollup of the audit trail.
type MetricsAggregation struct {
	TotalCount        int64   `gorm:"column:total_count"`
	SuccessCount      int64   `gorm:"column:success_count"`
	AverageSimilarity float64 `gorm:"column:average_similarity"`
}

// AggregateMetrics rolls up all recognition attempts.
func (r *RecognitionLogRepository) AggregateMetrics(ctx context.Context) (*MetricsAggregation, error) {
	var agg MetricsAggregation
	err := r.executeWithRetry(ctx, "audit.aggregate_metrics", "", func() error {
		return r.db.WithContext(ctx).
			Model(&RecognitionLog{}).
			Select("COUNT(*) AS total_count, COUNT(*) FILTER (WHERE success) AS success_count, COALESCE(AVG(similarity), 0) AS average_similarity").
			Scan(&agg).Error
	})
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
