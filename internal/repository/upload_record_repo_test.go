package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/streameme/streameme/internal/domain"
)

func newTestRepo(t *testing.T) *UploadRecordRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.UploadRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM upload_records")
	})
	return NewUploadRecordRepository(db)
}

func TestUploadRecordLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := &domain.UploadRecord{
		ID:         "rec-1",
		FileName:   "clip.mp4",
		FileSize:   1500000,
		Generation: 1,
		Status:     domain.RecordUploading,
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec.Status = domain.RecordSucceeded
	rec.SuggestionCount = 3
	rec.DurationMs = 1200
	if err := repo.Finish(ctx, rec); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	recs, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	got := recs[0]
	if got.Status != domain.RecordSucceeded || got.SuggestionCount != 3 {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestUploadRecordFailureKind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := &domain.UploadRecord{
		ID:         "rec-2",
		FileName:   "big.mp4",
		Generation: 2,
		Status:     domain.RecordFailed,
		FailureKind: domain.FailurePayloadTooLarge,
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	recs, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) == 0 || recs[0].FailureKind != domain.FailurePayloadTooLarge {
		t.Errorf("failure kind not persisted: %+v", recs)
	}
}
