package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streameme/streameme/internal/analyzer"
	"github.com/streameme/streameme/internal/api"
	"github.com/streameme/streameme/internal/api/middleware"
	"github.com/streameme/streameme/internal/config"
	"github.com/streameme/streameme/internal/logger"
	"github.com/streameme/streameme/internal/memelib"
	"github.com/streameme/streameme/internal/repository"
	"github.com/streameme/streameme/internal/session"
	"github.com/streameme/streameme/internal/storage"
)

func main() {
	// Initialize logger
	log := logger.NewDefault()
	logger.SetDefaultLogger(log)
	defer logger.Sync()

	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database for the upload audit log
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	records := repository.NewUploadRecordRepository(db)

	// Initialize staging storage (local disk or S3-compatible)
	staging, err := storage.NewStorage(&storage.Config{
		Type:     storage.Type(cfg.Staging.Type),
		LocalDir: cfg.Staging.LocalDir,
		BaseURL:  cfg.Staging.BaseURL,
		S3: storage.S3Config{
			Endpoint:  cfg.Staging.Endpoint,
			AccessKey: cfg.Staging.AccessKey,
			SecretKey: cfg.Staging.SecretKey,
			UseSSL:    cfg.Staging.UseSSL,
			Bucket:    cfg.Staging.Bucket,
			Region:    cfg.Staging.Region,
			PublicURL: cfg.Staging.PublicURL,
		},
	})
	if err != nil {
		log.Fatalf("Failed to initialize staging storage: %v", err)
	}
	if s3, ok := staging.(*storage.S3Storage); ok {
		if err := s3.EnsureBucket(context.Background()); err != nil {
			log.Fatalf("Failed to ensure staging bucket: %v", err)
		}
	}

	// Random source: seed 0 means entropy, anything else pins the sequence
	seed := cfg.Random.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Meme catalog and analysis client
	library := memelib.New(cfg.Library.BaseURL)
	client := analyzer.NewClient(&analyzer.Config{
		Endpoint: cfg.Analyzer.Endpoint,
		Mode:     cfg.Analyzer.Mode,
		Timeout:  cfg.Analyzer.Timeout(),
	})

	// The upload session
	sess := session.New(session.Options{
		Analyzer:       client,
		Staging:        staging,
		Library:        library,
		Rand:           rng,
		Records:        records,
		MaxUploadBytes: cfg.Analyzer.MaxUploadBytes,
	})

	// Setup router
	routerOpts := api.Options{
		Session:      sess,
		Library:      library,
		PreviewCount: cfg.Library.PreviewCount,
		Records:      records,
		Mode:         cfg.Server.Mode,
		CORS: middleware.CORSConfig{
			AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
			AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
		},
	}
	if cfg.Staging.Type == "" || cfg.Staging.Type == string(storage.TypeLocal) {
		routerOpts.StagingDir = cfg.Staging.LocalDir
		routerOpts.StagingBase = cfg.Staging.BaseURL
	}
	if dir := os.Getenv("MEMES_DIR"); dir != "" {
		routerOpts.MemesDir = dir
		routerOpts.MemeBase = cfg.Library.BaseURL
	}
	router := api.SetupRouter(routerOpts)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Infof("Starting API server: port=%d, mode=%s, analyzer=%s",
			cfg.Server.Port, cfg.Server.Mode, cfg.Analyzer.Endpoint)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Release the staged selection before exit
	sess.Close(context.Background())

	log.Infof("Server exited")
}
