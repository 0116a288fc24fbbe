package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath    string
	LogDir      string
	TicketsFile string

	// Insights backend. When EnableInsights is false the deterministic mock
	// generator is used instead of the HTTP one.
	EnableInsights  bool
	InsightsBaseURL string
	InsightsAPIKey  string
	InsightsModel   string
	InsightsTimeout time.Duration
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority when
	// launched by an MCP host with an arbitrary working directory)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		log.Warn().Err(err).Str("path", dataPath).Msg("Failed to create data directory")
	}

	timeoutSecs, _ := strconv.Atoi(getEnv("INSIGHTS_TIMEOUT_SECONDS", "45"))

	cfg := &AppConfig{
		DataPath:        dataPath,
		LogDir:          logDir,
		TicketsFile:     filepath.Join(dataPath, "tickets.json"),
		EnableInsights:  getEnvBool("ENABLE_INSIGHTS", false),
		InsightsBaseURL: getEnv("INSIGHTS_BASE_URL", ""),
		InsightsAPIKey:  getEnv("INSIGHTS_API_KEY", ""),
		InsightsModel:   getEnv("INSIGHTS_MODEL", "gpt-4o-mini"),
		InsightsTimeout: time.Duration(timeoutSecs) * time.Second,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
