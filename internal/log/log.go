// Package log provides categorised debug logging for uomsys.
// It wraps charmbracelet/log with a category field and stays silent until
// enabled by the --debug flag or the UOMSYS_DEBUG environment variable.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	clog "github.com/charmbracelet/log"
)

// Level represents log severity.
type Level = clog.Level

const (
	LevelDebug = clog.DebugLevel
	LevelInfo  = clog.InfoLevel
	LevelWarn  = clog.WarnLevel
	LevelError = clog.ErrorLevel
)

// Category groups related log messages.
type Category string

const (
	CatRegistry Category = "registry" // Registry construction and lookups
	CatManifest Category = "manifest" // Catalog parsing and validation
	CatProvider Category = "provider" // Provider catalog registration
	CatConfig   Category = "config"   // Configuration loading/saving
	CatCLI      Category = "cli"      // Command execution
)

var (
	mu       sync.RWMutex
	logger   *clog.Logger
	file     *os.File
	enabled  bool
	minLevel = LevelInfo
)

// Init directs log output to w and enables logging.
func Init(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	logger = newLogger(w)
	enabled = true
}

// InitFile appends log output to the file at path and enables logging.
// Returns a cleanup function to close the file.
func InitFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	mu.Lock()
	closeFileLocked()
	file = f
	logger = newLogger(f)
	enabled = true
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if file == f {
			closeFileLocked()
			logger = nil
			enabled = false
		}
	}, nil
}

func newLogger(w io.Writer) *clog.Logger {
	l := clog.New(w)
	l.SetReportTimestamp(true)
	l.SetLevel(minLevel)
	return l
}

func closeFileLocked() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

// SetEnabled toggles logging on/off.
func SetEnabled(on bool) {
	mu.Lock()
	enabled = on
	mu.Unlock()
}

// Enabled reports whether log output is currently written.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled && logger != nil
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
	if logger != nil {
		logger.SetLevel(l)
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(l Level, cat Category, msg string, fields ...any) {
	mu.RLock()
	lg, on := logger, enabled
	mu.RUnlock()
	if !on || lg == nil {
		return
	}
	lg.With("cat", string(cat)).Log(l, msg, fields...)
}
