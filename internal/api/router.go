package api

import (
	"github.com/gin-gonic/gin"

	"github.com/streameme/streameme/internal/api/handler"
	"github.com/streameme/streameme/internal/api/middleware"
	"github.com/streameme/streameme/internal/memelib"
	"github.com/streameme/streameme/internal/repository"
	"github.com/streameme/streameme/internal/session"
	"github.com/streameme/streameme/internal/timeline"
)

// Options carries everything the router wires into handlers.
type Options struct {
	Session      *session.Session
	Library      *memelib.Library
	PreviewCount int
	Records      *repository.UploadRecordRepository
	Mode         string
	CORS         middleware.CORSConfig
	// StagingDir and StagingBase expose the locally staged video files as
	// static content when the local staging backend is in use.
	StagingDir  string
	StagingBase string
	// MemesDir serves the static meme asset tree when set.
	MemesDir string
	MemeBase string
}

// SetupRouter configures the Gin router with all routes.
func SetupRouter(opts Options) *gin.Engine {
	switch opts.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(opts.CORS))

	playhead := timeline.NewPlayhead()
	presenter := timeline.NewPresenter(playhead)

	healthHandler := handler.NewHealthHandler()
	sessionHandler := handler.NewSessionHandler(opts.Session, playhead)
	libraryHandler := handler.NewLibraryHandler(opts.Library, opts.PreviewCount)
	timelineHandler := handler.NewTimelineHandler(opts.Session, presenter, playhead)

	r.GET("/health", healthHandler.Health)

	// Static trees: staged video files and the meme asset catalog
	if opts.StagingDir != "" {
		r.Static(opts.StagingBase, opts.StagingDir)
	}
	if opts.MemesDir != "" {
		r.Static(opts.MemeBase, opts.MemesDir)
	}

	v1 := r.Group("/api/v1")
	{
		// Session lifecycle
		v1.GET("/session", sessionHandler.State)
		v1.POST("/session/file", sessionHandler.SelectFile)
		v1.POST("/session/upload", sessionHandler.Upload)
		v1.DELETE("/session", sessionHandler.Reset)

		// Timeline
		v1.GET("/timeline", timelineHandler.Rows)
		v1.POST("/timeline/jump", timelineHandler.Jump)
		v1.GET("/timeline/playhead", timelineHandler.Playhead)

		// Meme library
		v1.GET("/library/categories", libraryHandler.Categories)
		v1.GET("/library/categories/:category/assets", libraryHandler.Assets)

		// Upload history
		if opts.Records != nil {
			historyHandler := handler.NewHistoryHandler(opts.Records)
			v1.GET("/history", historyHandler.List)
		}
	}

	return r
}
