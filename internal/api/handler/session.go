package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streameme/streameme/internal/domain"
	"github.com/streameme/streameme/internal/format"
	"github.com/streameme/streameme/internal/session"
	"github.com/streameme/streameme/internal/timeline"
)

// SessionHandler exposes the upload session to the presentation client.
type SessionHandler struct {
	session  *session.Session
	playhead *timeline.Playhead
}

// NewSessionHandler creates a session handler.
func NewSessionHandler(sess *session.Session, playhead *timeline.Playhead) *SessionHandler {
	return &SessionHandler{session: sess, playhead: playhead}
}

// SelectFile handles POST /api/v1/session/file. The picked file arrives as
// a multipart "file" part. A non-video pick is not an error: the selection
// is simply not applied, mirroring the silent guard in the picker.
func (h *SessionHandler) SelectFile(c *gin.Context) {
	f, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file part is required"})
		return
	}
	defer f.Close()

	contentType := header.Header.Get("Content-Type")
	selected, err := h.session.SelectFile(c.Request.Context(), header.Filename, contentType, header.Size, f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFileType) {
			c.JSON(http.StatusOK, gin.H{"selected": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage file"})
		return
	}

	h.playhead.Reset()
	c.JSON(http.StatusOK, gin.H{
		"selected":  true,
		"file":      selected,
		"size_text": format.FileSize(selected.Size),
	})
}

// Upload handles POST /api/v1/session/upload: one attempt against the
// analysis service, blocking until it resolves. The response carries the
// fresh session view either way.
func (h *SessionHandler) Upload(c *gin.Context) {
	err := h.session.BeginUpload(c.Request.Context())
	view := h.session.Snapshot()

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"session": view,
			"summary": timeline.Summarize(view.Result),
		})
	case errors.Is(err, domain.ErrNoSelection):
		c.JSON(http.StatusConflict, gin.H{"error": "no file selected"})
	case errors.Is(err, domain.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":   domain.FailureFileTooLarge.UserMessage(),
			"session": view,
		})
	case errors.Is(err, domain.ErrPayloadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":   domain.FailurePayloadTooLarge.UserMessage(),
			"session": view,
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   domain.FailureUploadFailed.UserMessage(),
			"session": view,
		})
	}
}

// State handles GET /api/v1/session.
func (h *SessionHandler) State(c *gin.Context) {
	view := h.session.Snapshot()
	resp := gin.H{"session": view}
	if view.File != nil {
		resp["size_text"] = format.FileSize(view.File.Size)
	}
	if view.Result != nil {
		resp["summary"] = timeline.Summarize(view.Result)
	}
	c.JSON(http.StatusOK, resp)
}

// Reset handles DELETE /api/v1/session: releases the staged selection and
// returns the session to idle.
func (h *SessionHandler) Reset(c *gin.Context) {
	h.session.Close(c.Request.Context())
	h.playhead.Reset()
	c.JSON(http.StatusOK, gin.H{"session": h.session.Snapshot()})
}
