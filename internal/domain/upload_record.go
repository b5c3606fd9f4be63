package domain

import "time"

// RecordStatus represents the terminal status of an upload attempt record.
// Values include RecordUploading, RecordSucceeded, and RecordFailed.
type RecordStatus string

const (
	RecordUploading RecordStatus = "uploading"
	RecordSucceeded RecordStatus = "succeeded"
	RecordFailed    RecordStatus = "failed"
)

// UploadRecord is the audit entry for one upload attempt. It stores attempt
// metadata only (never the analysis result itself): which file, which
// generation of the session, how the attempt ended, and how long it took.
type UploadRecord struct {
	ID              string       `gorm:"type:text;primaryKey" json:"id"`
	FileName        string       `gorm:"type:text;not null" json:"file_name"`
	FileSize        int64        `json:"file_size"`
	Generation      uint64       `gorm:"index:idx_upload_records_generation" json:"generation"`
	Status          RecordStatus `gorm:"type:text;index:idx_upload_records_status;default:uploading" json:"status"`
	FailureKind     FailureKind  `gorm:"type:text" json:"failure_kind,omitempty"`
	SuggestionCount int          `json:"suggestion_count"`
	DurationMs      int64        `json:"duration_ms"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// TableName returns the database table name for UploadRecord.
func (UploadRecord) TableName() string {
	return "upload_records"
}
