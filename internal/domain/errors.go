package domain

import "errors"

// Error taxonomy for the upload pipeline. Every failure of an attempt maps
// onto exactly one of these sentinels; callers classify with errors.Is.
var (
	// ErrInvalidFileType means the picked file is not a video. The selection
	// is dropped without touching session state.
	ErrInvalidFileType = errors.New("selected file is not a video")

	// ErrFileTooLarge means the file exceeds the client-side size limit and
	// no request was made to the analysis service.
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")

	// ErrPayloadTooLarge means the analysis service rejected the payload
	// after transmission. Distinguished from ErrUploadFailed so the user
	// understands to shrink the file.
	ErrPayloadTooLarge = errors.New("analysis service rejected the payload as too large")

	// ErrUploadFailed covers transport errors, non-2xx statuses, and
	// unparseable response bodies.
	ErrUploadFailed = errors.New("upload failed")

	// ErrNoSelection means an upload was requested before any file was
	// selected for the session.
	ErrNoSelection = errors.New("no file selected")
)

// FailureKind labels a failed upload attempt for display and audit purposes.
type FailureKind string

const (
	FailureNone            FailureKind = ""
	FailureFileTooLarge    FailureKind = "file_too_large"
	FailurePayloadTooLarge FailureKind = "payload_too_large"
	FailureUploadFailed    FailureKind = "upload_failed"
)

// KindOf maps a pipeline error onto its failure kind.
func KindOf(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrFileTooLarge):
		return FailureFileTooLarge
	case errors.Is(err, ErrPayloadTooLarge):
		return FailurePayloadTooLarge
	default:
		return FailureUploadFailed
	}
}

// UserMessage returns the message shown to the user for a failure kind.
func (k FailureKind) UserMessage() string {
	switch k {
	case FailureFileTooLarge:
		return "File size exceeds 2GB limit. Please choose a smaller video file."
	case FailurePayloadTooLarge:
		return "File is too large (max 2GB). Please choose a smaller video file."
	case FailureUploadFailed:
		return "Upload failed. Please try again."
	default:
		return ""
	}
}
