package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/arthur-debert/extlinker/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvComponentLevels names per-component level overrides, for example
// "manifest=trace,linker=debug".
const EnvComponentLevels = "EXTLINKER_LOG_LEVELS"

var (
	componentMu     sync.RWMutex
	componentLevels = map[string]zerolog.Level{}
)

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	// Configure zerolog based on verbosity
	base := levelFor(verbosity)

	// Component overrides may be more verbose than the base level, so the
	// global gate opens to the most verbose of them
	overrides, parseErr := ParseComponentLevels(os.Getenv(EnvComponentLevels))
	SetComponentLevels(overrides)
	global := base
	for _, level := range overrides {
		if level < global {
			global = level
		}
	}
	zerolog.SetGlobalLevel(global)

	// Configure console output with pretty printing
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}

	// Set up file logging
	var writers []io.Writer
	writers = append(writers, consoleWriter)

	// Log file lives in the state dir, next to the manifest
	logFile := paths.LogFilePath()
	logFileHandle, err := setupLogFile(logFile)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	// Create multi-writer
	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).Level(base).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}
	if parseErr != nil {
		log.Warn().Err(parseErr).Str("env", EnvComponentLevels).Msg("Ignoring component log levels")
	}

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	// Log the logging level
	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// ParseComponentLevels reads a comma separated list of component=level
// pairs. An empty string yields no overrides.
func ParseComponentLevels(spec string) (map[string]zerolog.Level, error) {
	levels := map[string]zerolog.Level{}
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid component level %q, want component=level", pair)
		}
		level, err := zerolog.ParseLevel(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid level for component %q: %w", name, err)
		}
		levels[name] = level
	}
	return levels, nil
}

// SetComponentLevels replaces the per-component overrides applied by GetLogger.
func SetComponentLevels(levels map[string]zerolog.Level) {
	componentMu.Lock()
	defer componentMu.Unlock()
	componentLevels = make(map[string]zerolog.Level, len(levels))
	for name, level := range levels {
		componentLevels[name] = level
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	logger := log.With().Str("component", name).Logger()

	componentMu.RLock()
	level, ok := componentLevels[name]
	componentMu.RUnlock()
	if ok {
		return logger.Level(level)
	}
	return logger
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	// Create parent directories
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
