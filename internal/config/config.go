package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingSecret is returned when a required credential is not set.
var ErrMissingSecret = errors.New("config: required secret is not set")

const (
	EnvFigmaToken   = "FIGMA_ACCESS_TOKEN"
	EnvGeminiAPIKey = "GEMINI_API_KEY"

	DefaultReportPath = "report.md"
)

type Config struct {
	FigmaToken   string
	FigmaBaseURL string
	GeminiAPIKey string
	GeminiModel  string
	// TokenCapacity overrides the model's input budget used for the
	// pre-flight size warning. Zero keeps the model default.
	TokenCapacity int
	ReportPath    string
	LogLevel      string

	// Defaults for operator input when flags are not given.
	FileKey string
	NodeID  string

	Mirror MirrorConfig
}

// MirrorConfig describes the optional S3/MinIO copy of each report.
type MirrorConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// Load reads .env (if present) and the process environment once.
// Both API credentials are required.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key string) string { return strings.TrimSpace(getenv(key)) }

	cfg := &Config{
		FigmaToken:   get(EnvFigmaToken),
		FigmaBaseURL: get("FIGMA_API_BASE_URL"),
		GeminiAPIKey: get(EnvGeminiAPIKey),
		GeminiModel:  get("GEMINI_MODEL"),
		ReportPath:   firstNonEmpty(get("REPORT_PATH"), DefaultReportPath),
		LogLevel:     firstNonEmpty(get("LOG_LEVEL"), "warn"),
		FileKey:      get("FIGMA_FILE_KEY"),
		NodeID:       get("FIGMA_NODE_ID"),
		Mirror:       loadMirrorConfig(get),
	}
	if raw := get("GEMINI_TOKEN_CAP"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("config: GEMINI_TOKEN_CAP must be a non-negative integer, got %q", raw)
		}
		cfg.TokenCapacity = n
	}

	if cfg.FigmaToken == "" {
		return nil, fmt.Errorf("%w: %s (set it in the environment or .env)", ErrMissingSecret, EnvFigmaToken)
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: %s (set it in the environment or .env)", ErrMissingSecret, EnvGeminiAPIKey)
	}
	return cfg, nil
}

func loadMirrorConfig(get func(string) string) MirrorConfig {
	endpoint := get("REPORT_S3_ENDPOINT")
	return MirrorConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(get("REPORT_S3_REGION"), "us-east-1"),
		AccessKey: firstNonEmpty(get("REPORT_S3_ACCESS_KEY"), get("MINIO_ROOT_USER")),
		SecretKey: firstNonEmpty(get("REPORT_S3_SECRET_KEY"), get("MINIO_ROOT_PASSWORD")),
		Bucket:    firstNonEmpty(get("REPORT_S3_BUCKET"), "designlens-reports"),
		Prefix:    get("REPORT_S3_PREFIX"),
		UseSSL:    parseBool(get("REPORT_S3_USE_SSL"), true),
	}
}

func parseBool(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
