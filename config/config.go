package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the viewer settings. Command line flags override it.
type Config struct {
	LogLevel string
	LogFile  string

	StationsFile string
	DataDir      string
	Columns      string
	ViewsFile    string

	WindowWidth  int
	WindowHeight int

	LoadTimeoutMS int
}

// Load reads configuration from environment variables and optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	cfg := &Config{
		LogLevel:      strings.ToLower(getEnvOrDefault("WTXMESO_LOG_LEVEL", "info")),
		LogFile:       getEnvOrDefault("WTXMESO_LOG_FILE", "logs/wtxmeso.log"),
		StationsFile:  getEnvOrDefault("WTXMESO_STATIONS_FILE", "stations.xlsx"),
		DataDir:       getEnvOrDefault("WTXMESO_DATA_DIR", "data"),
		Columns:       strings.ToLower(getEnvOrDefault("WTXMESO_COLUMNS", "all")),
		ViewsFile:     getEnvOrDefault("WTXMESO_VIEWS_FILE", ""),
		WindowWidth:   getEnvIntOrDefault("WTXMESO_WINDOW_WIDTH", 1600),
		WindowHeight:  getEnvIntOrDefault("WTXMESO_WINDOW_HEIGHT", 900),
		LoadTimeoutMS: getEnvIntOrDefault("WTXMESO_LOAD_TIMEOUT_MS", 30000),
	}
	if cfg.WindowWidth < 320 {
		cfg.WindowWidth = 320
	}
	if cfg.WindowHeight < 240 {
		cfg.WindowHeight = 240
	}
	if cfg.LoadTimeoutMS < 1000 {
		cfg.LoadTimeoutMS = 1000
	}
	return cfg, nil
}

// LoadTimeout is the per-file read timeout of the data loader.
func (c *Config) LoadTimeout() time.Duration {
	return time.Duration(c.LoadTimeoutMS) * time.Millisecond
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
