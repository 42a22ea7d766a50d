package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrIdentityNotFound is returned when an identity does not exist.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository resolves identity display metadata. Read-only from
// the pipeline's perspective; identities are provisioned elsewhere.
type IdentityRepository struct {
	db *gorm.DB
	retryPolicy
}

// NewIdentityRepository creates a new repository instance.
func NewIdentityRepository(db *gorm.DB, logger *zap.Logger) *IdentityRepository {
	return &IdentityRepository{db: db, retryPolicy: defaultRetryPolicy(logger.Named("identity_repository"))}
}

// Get resolves one identity by ID.
func (r *IdentityRepository) Get(ctx context.Context, id string) (*IdentityRecord, error) {
	var record IdentityRecord
	err := r.executeWithRetry(ctx, "identity.get", "", func() error {
		err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIdentityNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Exists reports whether an identity is present in the roster.
func (r *IdentityRepository) Exists(ctx context.Context, id string) (bool, error) {
	found := true
	err := r.executeWithRetry(ctx, "identity.exists", "", func() error {
		var record IdentityRecord
		err := r.db.WithContext(ctx).Select("id").First(&record, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
