// Package debug provides the diagnostic log for incidentdesk.
// Warnings and errors always reach the log; debug lines only when --debug is
// passed (or debug: true is set). Logs are JSON lines written to
// ~/.incidentdesk/debug.log, truncated on each launch.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the name of the directory containing the log file.
	LogDirName = ".incidentdesk"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  = zap.NewNop()
	logFile *os.File

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = defaultGetLogPath
)

// Init opens the log file. With enable false only Warn and Error are
// written; Logf becomes a no-op.
func Init(enable bool) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	enabled = enable
	logger = zap.NewNop()

	logPath, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	//nolint:gosec // G304: Log path is computed from user home, not user input
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	level := zapcore.WarnLevel
	if enable {
		level = zapcore.DebugLevel
	}
	logger = newJSONLogger(f, level)
	logger.Info("debug log started", zap.String("path", logPath))
	return nil
}

// InitWriter routes the log to w at the given level. The CLI uses it to
// send warnings to stderr.
func InitWriter(w io.Writer, level zapcore.Level) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	enabled = true
	logger = newConsoleLogger(w, level)
}

func newJSONLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func newConsoleLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// Close flushes and closes the log file if open. Safe to call more than once.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	enabled = false
	logger = zap.NewNop()
}

func closeLocked() {
	if logger != nil {
		_ = logger.Sync()
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// L returns the active logger. It is never nil.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Logf writes a formatted debug message if debug logging is enabled.
func Logf(format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	logger.Sugar().Debugf(format, v...)
}

// Warn records a recoverable failure, such as a list read that left the
// UI showing stale data. It is written whether or not debug is enabled.
func Warn(msg string, fields ...zap.Field) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Warn(msg, fields...)
}

// Error records a failure the user was told about.
func Error(msg string, fields ...zap.Field) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Error(msg, fields...)
}

// Enabled reports whether debug-level lines are being written.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the path to the debug log file.
func GetLogPath() (string, error) {
	return getLogPath()
}
