package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
	"github.com/zainabhax0r-dev/facescan-pro/internal/match"
)

// TemplateRepository stores one canonical template per identity.
type TemplateRepository struct {
	db *gorm.DB
	retryPolicy
}

// NewTemplateRepository creates a new repository instance.
func NewTemplateRepository(db *gorm.DB, logger *zap.Logger) *TemplateRepository {
	return &TemplateRepository{db: db, retryPolicy: defaultRetryPolicy(logger.Named("template_repository"))}
}

// Upsert writes the template for an identity, replacing any previous one.
// The unique index on identity_id keeps templates one-per-identity even
// under concurrent enrollments.
func (r *TemplateRepository) Upsert(ctx context.Context, identityID string, tpl biometric.Template) error {
	embedding, err := json.Marshal(tpl.Embedding)
	if err != nil {
		return err
	}
	landmarks, err := json.Marshal(tpl.Landmarks)
	if err != nil {
		return err
	}

	record := TemplateRecord{
		IdentityID:    identityID,
		Embedding:     embedding,
		Landmarks:     landmarks,
		LivenessScore: tpl.LivenessScore,
		CapturedAt:    tpl.CapturedAt,
		UpdatedAt:     time.Now().UTC(),
	}
	return r.executeWithRetry(ctx, "template.upsert", "", func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "identity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"embedding", "landmarks", "liveness_score", "captured_at", "updated_at",
			}),
		}).Create(&record).Error
	})
}

// GetAll loads the full gallery snapshot, ordered by identity for
// deterministic first-seen tie-breaking during matching.
func (r *TemplateRepository) GetAll(ctx context.Context) (match.Gallery, error) {
	var records []TemplateRecord
	err := r.executeWithRetry(ctx, "template.get_all", "", func() error {
		return r.db.WithContext(ctx).Order("identity_id").Find(&records).Error
	})
	if err != nil {
		return nil, err
	}

	gallery := make(match.Gallery, 0, len(records))
	for _, rec := range records {
		entry, err := recordToEntry(rec)
		if err != nil {
			return nil, err
		}
		gallery = append(gallery, entry)
	}
	return gallery, nil
}

func recordToEntry(rec TemplateRecord) (match.Entry, error) {
	var embedding biometric.Embedding
	if err := json.Unmarshal(rec.Embedding, &embedding); err != nil {
		return match.Entry{}, err
	}
	var landmarks biometric.LandmarkSet
	if len(rec.Landmarks) > 0 {
		if err := json.Unmarshal(rec.Landmarks, &landmarks); err != nil {
			return match.Entry{}, err
		}
	}
	return match.Entry{
		IdentityID: rec.IdentityID,
		Template: biometric.Template{
			Embedding:     embedding,
			Landmarks:     landmarks,
			LivenessScore: rec.LivenessScore,
			CapturedAt:    rec.CapturedAt,
		},
	}, nil
}
