package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/streameme/streameme/internal/domain"
)

// UploadRecordRepository handles upload-attempt audit records.
type UploadRecordRepository struct {
	db *gorm.DB
}

// NewUploadRecordRepository creates a repository bound to db.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *UploadRecordRepository: repository instance bound to db.
func NewUploadRecordRepository(db *gorm.DB) *UploadRecordRepository {
	return &UploadRecordRepository{db: db}
}

// Create inserts a new upload attempt record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - rec: record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *UploadRecordRepository) Create(ctx context.Context, rec *domain.UploadRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Finish marks an attempt record with its terminal outcome.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - rec: record with status, failure kind, counts, and duration set.
// Returns:
//   - error: non-nil if the update fails.
func (r *UploadRecordRepository) Finish(ctx context.Context, rec *domain.UploadRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// List returns the most recent attempt records, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - limit: maximum number of records; non-positive means 20.
// Returns:
//   - []domain.UploadRecord: attempt records.
//   - error: non-nil if the query fails.
func (r *UploadRecordRepository) List(ctx context.Context, limit int) ([]domain.UploadRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []domain.UploadRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
