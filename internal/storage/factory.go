package storage

import "fmt"

// Type selects the staging backend implementation.
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// Config holds the staging storage configuration for either backend.
type Config struct {
	Type Type

	// Local backend
	LocalDir string
	// BaseURL is the URL prefix staged objects are served under by the
	// local backend.
	BaseURL string

	// S3-compatible backend
	S3 S3Config
}

// NewStorage creates an ObjectStorage instance based on the configuration.
// An empty type defaults to the local backend.
func NewStorage(cfg *Config) (ObjectStorage, error) {
	switch cfg.Type {
	case TypeS3:
		return NewS3Storage(&cfg.S3)
	case TypeLocal, "":
		return NewLocalStorage(cfg.LocalDir, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
