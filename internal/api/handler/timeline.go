package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streameme/streameme/internal/domain"
	"github.com/streameme/streameme/internal/session"
	"github.com/streameme/streameme/internal/timeline"
)

// TimelineHandler serves the chronological suggestion view and forwards
// jump actions to the playback surface.
type TimelineHandler struct {
	session   *session.Session
	presenter *timeline.Presenter
	playhead  *timeline.Playhead
}

// NewTimelineHandler creates a timeline handler.
func NewTimelineHandler(sess *session.Session, presenter *timeline.Presenter, playhead *timeline.Playhead) *TimelineHandler {
	return &TimelineHandler{session: sess, presenter: presenter, playhead: playhead}
}

// Rows handles GET /api/v1/timeline. Before the first successful upload the
// timeline is empty.
func (h *TimelineHandler) Rows(c *gin.Context) {
	result := h.session.Result()
	c.JSON(http.StatusOK, gin.H{
		"rows":    timeline.Rows(result),
		"summary": timeline.Summarize(result),
	})
}

type jumpRequest struct {
	StartTime float64 `json:"start_time"`
}

// Jump handles POST /api/v1/timeline/jump: seeks the playback surface to
// the requested start time and resumes playback.
func (h *TimelineHandler) Jump(c *gin.Context) {
	var req jumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time is required"})
		return
	}

	h.presenter.JumpTo(domain.Suggestion{StartTime: req.StartTime})

	position, playing := h.playhead.State()
	c.JSON(http.StatusOK, gin.H{"position": position, "playing": playing})
}

// Playhead handles GET /api/v1/timeline/playhead.
func (h *TimelineHandler) Playhead(c *gin.Context) {
	position, playing := h.playhead.State()
	c.JSON(http.StatusOK, gin.H{"position": position, "playing": playing})
}
