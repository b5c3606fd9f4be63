package domain

// SessionState represents the phase of the upload session's lifecycle.
// Values include SessionIdle, SessionSelecting, SessionReady,
// SessionUploading, SessionSucceeded, and SessionFailed.
type SessionState string

const (
	SessionIdle      SessionState = "idle"
	SessionSelecting SessionState = "selecting"
	SessionReady     SessionState = "ready"
	SessionUploading SessionState = "uploading"
	SessionSucceeded SessionState = "succeeded"
	SessionFailed    SessionState = "failed"
)

// SelectedFile identifies the video the user picked for the current session.
// StorageKey addresses the staged copy in object storage; PlayableURL is the
// ephemeral handle the playback surface streams from. Both are released when
// a new selection supersedes this one or the session is closed.
type SelectedFile struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	StorageKey  string `json:"-"`
	PlayableURL string `json:"playable_url"`
}
