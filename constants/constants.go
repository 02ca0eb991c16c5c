package constants

import (
	"log/slog"
	"os"
	"strings"
)

// MaxDisplayed is how many combinations a reader is shown at once.
const MaxDisplayed = 4

func GetPort() string {
	port := os.Getenv("STRADELLA_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetCatalogPath points at an optional JSON chord catalog replacing the
// built-in one. Empty means the built-in catalog.
func GetCatalogPath() string {
	return os.Getenv("STRADELLA_CATALOG")
}

func GetLogLevel() slog.Level {
	switch strings.ToLower(os.Getenv("STRADELLA_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func UseShiftedFallback() bool {
	switch strings.ToLower(os.Getenv("STRADELLA_SHIFTED_FALLBACK")) {
	case "1", "true", "yes":
		return true
	}
	return false
}
