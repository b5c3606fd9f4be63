package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
	Library  LibraryConfig  `mapstructure:"library"`
	Staging  StagingConfig  `mapstructure:"staging"`
	Database DatabaseConfig `mapstructure:"database"`
	Random   RandomConfig   `mapstructure:"random"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

// AnalyzerConfig configures the remote analysis service client.
type AnalyzerConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Mode     int    `mapstructure:"mode"`
	// TimeoutMinutes bounds one upload round-trip. Video payloads can be
	// large, so this is measured in minutes.
	TimeoutMinutes int `mapstructure:"timeout_minutes"`
	// MaxUploadBytes is the client-side size limit checked before any
	// network call.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

// Timeout returns the configured round-trip timeout as a duration.
func (c AnalyzerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMinutes) * time.Minute
}

// LibraryConfig configures the static meme asset catalog.
type LibraryConfig struct {
	// BaseURL is the static prefix meme assets are served under.
	BaseURL string `mapstructure:"base_url"`
	// PreviewCount is how many asset names the category preview returns.
	PreviewCount int `mapstructure:"preview_count"`
}

// StagingConfig configures where selected video files are staged.
type StagingConfig struct {
	Type     string `mapstructure:"type"` // local or s3
	LocalDir string `mapstructure:"local_dir"`
	BaseURL  string `mapstructure:"base_url"`

	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	PublicURL string `mapstructure:"public_url"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// RandomConfig configures the injected random source. Seed 0 means seed
// from entropy; any other value pins the sequence, which makes asset picks
// and synthetic confidences reproducible.
type RandomConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// maxUploadBytes is the default client-side limit: 2 GiB.
const maxUploadBytes int64 = 2 * 1024 * 1024 * 1024

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("analyzer.endpoint", "http://localhost:9090/upload")
	v.SetDefault("analyzer.mode", 1)
	v.SetDefault("analyzer.timeout_minutes", 10)
	v.SetDefault("analyzer.max_upload_bytes", maxUploadBytes)
	v.SetDefault("library.base_url", "/memes")
	v.SetDefault("library.preview_count", 15)
	v.SetDefault("staging.type", "local")
	v.SetDefault("staging.local_dir", "./data/staging")
	v.SetDefault("staging.base_url", "/media")
	v.SetDefault("staging.use_ssl", false)
	v.SetDefault("staging.bucket", "streameme-staging")
	v.SetDefault("database.path", "./data/streameme.db")
	v.SetDefault("random.seed", 0)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("analyzer.endpoint", "ANALYZER_ENDPOINT")
	v.BindEnv("analyzer.timeout_minutes", "ANALYZER_TIMEOUT_MINUTES")
	v.BindEnv("staging.endpoint", "STAGING_ENDPOINT")
	v.BindEnv("staging.access_key", "STAGING_ACCESS_KEY")
	v.BindEnv("staging.secret_key", "STAGING_SECRET_KEY")
	v.BindEnv("staging.use_ssl", "STAGING_USE_SSL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
