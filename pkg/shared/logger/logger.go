package logger

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mullzhang/vulturediff/pkg/shared/config"
)

// NewLogger creates a new hclog.Logger instance based on the YAML configuration
// and the provided name. Output goes to stderr so the report stream on stdout
// stays machine-consumable.
func NewLogger(cfg *config.Config, name string) hclog.Logger {
	var logLevel hclog.Level

	if cfg != nil && cfg.Logger.Level != "" {
		logLevel = getLogLevel(strings.ToUpper(cfg.Logger.Level))
	} else {
		// env variable has the second priority
		logLevelEnv := os.Getenv("VULTUREDIFF_LOG_LEVEL")
		logLevel = getLogLevel(strings.ToUpper(logLevelEnv))
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: true,
		Output:      os.Stderr,
		Level:       logLevel,
	})

	return logger
}

func getLogLevel(levelStr string) hclog.Level {
	switch levelStr {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		return hclog.Warn
	}
}
