// Package session owns the lifecycle of one file selection, one upload
// attempt, and one analysis result. All state transitions are serialized
// through the session mutex; the only long-running operation (the upload
// round-trip) runs outside the lock and is tagged with a generation so a
// newer selection silently supersedes its completion.
package session

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/streameme/streameme/internal/analyzer"
	"github.com/streameme/streameme/internal/domain"
	"github.com/streameme/streameme/internal/logger"
	"github.com/streameme/streameme/internal/memelib"
	"github.com/streameme/streameme/internal/storage"
)

// Analyzer is the outbound contract to the analysis service.
type Analyzer interface {
	Analyze(ctx context.Context, fileName string, file io.Reader) (*analyzer.Response, error)
}

// Recorder persists upload-attempt audit records. Optional; a nil Recorder
// disables auditing.
type Recorder interface {
	Create(ctx context.Context, rec *domain.UploadRecord) error
	Finish(ctx context.Context, rec *domain.UploadRecord) error
}

// Rand is the random capability used for asset picks and synthetic
// confidence values. Injected so tests can pin a seed.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Options wires a Session's collaborators.
type Options struct {
	Analyzer       Analyzer
	Staging        storage.ObjectStorage
	Library        *memelib.Library
	Rand           Rand
	Records        Recorder
	MaxUploadBytes int64
}

// Session is the upload session state machine. One instance serves one
// presentation surface; a new file pick resets the pipeline and invalidates
// any in-flight attempt.
type Session struct {
	mu         sync.Mutex
	state      domain.SessionState
	file       *domain.SelectedFile
	result     *domain.AnalysisResult
	failure    domain.FailureKind
	generation uint64
	busy       bool

	analyzer       Analyzer
	staging        storage.ObjectStorage
	selector       *memelib.Selector
	rng            Rand
	records        Recorder
	maxUploadBytes int64
}

// New creates an idle session.
func New(opts Options) *Session {
	return &Session{
		state:          domain.SessionIdle,
		analyzer:       opts.Analyzer,
		staging:        opts.Staging,
		selector:       memelib.NewSelector(opts.Library, opts.Rand),
		rng:            opts.Rand,
		records:        opts.Records,
		maxUploadBytes: opts.MaxUploadBytes,
	}
}

// SelectFile validates and stages a newly picked file, releasing the prior
// selection's playable handle and clearing any previous result. Non-video
// content types are rejected with domain.ErrInvalidFileType and leave the
// session untouched; callers treat that as a silent no-op.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - name: original file name.
//   - contentType: MIME type reported for the file.
//   - size: declared size in bytes.
//   - r: file content to stage.
//
// Returns:
//   - *domain.SelectedFile: the staged selection.
//   - error: non-nil on rejection or staging failure.
func (s *Session) SelectFile(ctx context.Context, name, contentType string, size int64, r io.Reader) (*domain.SelectedFile, error) {
	if !strings.HasPrefix(contentType, "video/") {
		return nil, domain.ErrInvalidFileType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.SessionSelecting
	// Entering Selecting supersedes any in-flight upload: its completion
	// will observe a newer generation and be discarded.
	s.generation++
	s.busy = false

	key := stagingKey(name)
	if err := s.staging.Upload(ctx, key, r, size, contentType); err != nil {
		// Selection failed; fall back to whatever was selected before.
		if s.file != nil {
			s.state = domain.SessionReady
		} else {
			s.state = domain.SessionIdle
		}
		return nil, fmt.Errorf("failed to stage selection: %w", err)
	}

	if prior := s.file; prior != nil {
		s.releaseLocked(ctx, prior)
	}

	s.file = &domain.SelectedFile{
		Name:        name,
		Size:        size,
		ContentType: contentType,
		StorageKey:  key,
		PlayableURL: s.staging.GetURL(key),
	}
	s.result = nil
	s.failure = domain.FailureNone
	s.state = domain.SessionReady

	logger.CtxInfo(ctx, "File selected: name=%s, size=%d, generation=%d", name, size, s.generation)
	return s.file, nil
}

// BeginUpload submits the selected file to the analysis service and blocks
// until the attempt resolves. Exactly one attempt can be in flight; a call
// while one is running is a no-op. The size limit is checked before any
// network traffic.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//
// Returns:
//   - error: domain.ErrNoSelection, domain.ErrFileTooLarge, or the
//     classified upload failure. A superseded attempt returns nil.
func (s *Session) BeginUpload(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		// Duplicate request while an attempt is in flight.
		s.mu.Unlock()
		return nil
	}
	if s.file == nil {
		s.mu.Unlock()
		return domain.ErrNoSelection
	}
	if s.file.Size > s.maxUploadBytes {
		s.mu.Unlock()
		return domain.ErrFileTooLarge
	}

	s.busy = true
	s.state = domain.SessionUploading
	gen := s.generation
	file := *s.file
	s.mu.Unlock()

	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldGeneration: gen,
		logger.FieldFileName:   file.Name,
	})

	rec := &domain.UploadRecord{
		ID:         uuid.New().String(),
		FileName:   file.Name,
		FileSize:   file.Size,
		Generation: gen,
		Status:     domain.RecordUploading,
	}
	if s.records != nil {
		if err := s.records.Create(ctx, rec); err != nil {
			logger.CtxWarn(ctx, "Failed to record upload attempt: %v", err)
		}
	}

	started := time.Now()
	resp, err := s.run(ctx, &file)
	s.finishRecord(ctx, rec, err, resp, time.Since(started))

	return s.complete(ctx, gen, resp, err)
}

// run streams the staged file to the analysis service.
func (s *Session) run(ctx context.Context, file *domain.SelectedFile) (*analyzer.Response, error) {
	reader, err := s.staging.Open(ctx, file.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: open staged file: %v", domain.ErrUploadFailed, err)
	}
	defer reader.Close()

	return s.analyzer.Analyze(ctx, file.Name, reader)
}

// complete applies an attempt's outcome, unless a newer selection has
// superseded it, in which case the outcome is discarded silently.
func (s *Session) complete(ctx context.Context, gen uint64, resp *analyzer.Response, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		logger.CtxInfo(ctx, "Discarding stale upload completion: generation=%d, current=%d", gen, s.generation)
		return nil
	}

	s.busy = false
	if err != nil {
		s.failure = domain.KindOf(err)
		s.state = domain.SessionFailed
		logger.CtxWarn(ctx, "Upload failed: kind=%s, err=%v", s.failure, err)
		return err
	}

	s.result = Normalize(resp, s.selector, s.rng)
	s.failure = domain.FailureNone
	s.state = domain.SessionSucceeded
	logger.CtxInfo(ctx, "Upload succeeded: suggestions=%d", len(s.result.Suggestions))
	return nil
}

// finishRecord writes the attempt's terminal audit fields.
func (s *Session) finishRecord(ctx context.Context, rec *domain.UploadRecord, err error, resp *analyzer.Response, elapsed time.Duration) {
	if s.records == nil {
		return
	}
	rec.DurationMs = elapsed.Milliseconds()
	if err != nil {
		rec.Status = domain.RecordFailed
		rec.FailureKind = domain.KindOf(err)
	} else {
		rec.Status = domain.RecordSucceeded
		rec.SuggestionCount = len(resp.Suggestions)
	}
	if ferr := s.records.Finish(ctx, rec); ferr != nil {
		logger.CtxWarn(ctx, "Failed to finish upload record: %v", ferr)
	}
}

// Result returns the current analysis result, or nil before the first
// success. The result is immutable; callers may hold it across renders.
func (s *Session) Result() *domain.AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// View is a read-only snapshot of the session for the presentation layer.
type View struct {
	State      domain.SessionState    `json:"state"`
	File       *domain.SelectedFile   `json:"file,omitempty"`
	Failure    domain.FailureKind     `json:"failure,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Generation uint64                 `json:"generation"`
	Result     *domain.AnalysisResult `json:"result,omitempty"`
}

// Snapshot returns the current session view.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State:      s.state,
		Failure:    s.failure,
		Message:    s.failure.UserMessage(),
		Generation: s.generation,
		Result:     s.result,
	}
	if s.file != nil {
		f := *s.file
		v.File = &f
	}
	return v
}

// Close releases the staged selection and returns the session to idle.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.busy = false
	if s.file != nil {
		s.releaseLocked(ctx, s.file)
		s.file = nil
	}
	s.result = nil
	s.failure = domain.FailureNone
	s.state = domain.SessionIdle
}

// releaseLocked deletes a staged object. Caller holds the mutex.
func (s *Session) releaseLocked(ctx context.Context, f *domain.SelectedFile) {
	if err := s.staging.Delete(ctx, f.StorageKey); err != nil {
		logger.CtxWarn(ctx, "Failed to release staged file %s: %v", f.StorageKey, err)
	}
}

// stagingKey builds a unique object key for a selection, keeping the
// original extension so the playable URL stays recognizable.
func stagingKey(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		ext = ".mp4"
	}
	return uuid.New().String() + ext
}
