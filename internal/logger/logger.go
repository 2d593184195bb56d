// Package logger provides leveled logging for suzu.
//
// Log lines go to stderr, separate from the user-facing output that goes to
// stdout, so verbose debugging never interferes with normal CLI output or
// JSON formatting. Once the application knows where its log file lives,
// InitFile tees every line into a size-rotated file as well.
//
// # Log Levels
//
// Four log levels are supported, in order of severity:
//   - Debug: Detailed information for debugging
//   - Info: General operational information
//   - Warn: Warning conditions that don't prevent operation
//   - Error: Error conditions that affect operation
//
// # Initialization
//
//	logger.Init(verbose)          // verbose=true enables Debug level
//	logger.InitFile("suzu.log")   // optional rotating file sink
//	defer logger.CloseFile()
//
// By default (verbose=false), only Warn and Error messages are shown.
//
// # Named Loggers
//
// The package-level functions write untagged lines. App and Plugin return the
// two named loggers, which share the global level and sinks and prefix each
// message with their name:
//
//	logger.App().Info("configuration loaded from %s", path)
//	logger.Plugin().Warn("plugin %s has no manifest", name)
//
// Plugin is reserved for code loaded as a plug-in. Nothing in this module
// loads plug-ins yet, so only App has callers here; the plug-in logger is
// kept so that its name and format stay fixed for plug-in authors.
//
// # Output Format
//
//	[LEVEL] YYYY-MM-DD HH:MM:SS message
//	[INFO] 2026-02-03 10:30:45 suzu: configuration loaded from config.json
//
// Structured logs append sorted key=value pairs:
//
//	[DEBUG] 2026-02-03 10:30:45 store opened healthy=true path=config.json
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents a logging severity level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Names of the two application loggers.
const (
	AppName    = "suzu"
	PluginName = "suzu-plugin"
)

// Rotation limits for the file sink.
const (
	fileMaxSizeMB  = 10
	fileMaxBackups = 3
	fileMaxAgeDays = 28
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name, in any case, to a Level. "warning" is
// accepted for LevelWarn.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelWarn, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger is the shared sink state: one threshold, a console writer and an
// optional rotating file.
type Logger struct {
	mu      sync.Mutex
	level   Level
	console io.Writer
	file    *lumberjack.Logger
	output  io.Writer
}

var std = &Logger{
	level:   LevelWarn,
	console: os.Stderr,
	output:  os.Stderr,
}

// Init sets the threshold from the verbose flag: Debug when set, Warn
// otherwise.
func Init(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelWarn)
	}
}

// InitFile adds a rotating file sink at path. Lines keep going to the console
// writer too. Calling InitFile again replaces the previous file sink.
func InitFile(path string) error {
	if path == "" {
		return fmt.Errorf("log file path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		MaxAge:     fileMaxAgeDays,
	}

	std.mu.Lock()
	defer std.mu.Unlock()

	if std.file != nil {
		_ = std.file.Close()
	}
	std.file = sink
	std.rebuild()
	return nil
}

// CloseFile detaches and closes the file sink, if any.
func CloseFile() error {
	std.mu.Lock()
	defer std.mu.Unlock()

	if std.file == nil {
		return nil
	}
	err := std.file.Close()
	std.file = nil
	std.rebuild()
	return err
}

// FilePath returns the path of the active file sink, or "".
func FilePath() string {
	std.mu.Lock()
	defer std.mu.Unlock()

	if std.file == nil {
		return ""
	}
	return std.file.Filename
}

// SetLevel sets the minimum level that reaches the sinks.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// GetLevel returns the current threshold.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.level
}

// SetOutput replaces the console writer. A nil writer restores os.Stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	std.console = w
	std.rebuild()
}

// rebuild recomputes output from the sinks. Caller holds mu.
func (l *Logger) rebuild() {
	if l.file == nil {
		l.output = l.console
		return
	}
	l.output = io.MultiWriter(l.console, l.file)
}

// write emits one line: [LEVEL] timestamp name: msg k=v ...
func (l *Logger) write(level Level, name, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s ", level, time.Now().Format("2006-01-02 15:04:05"))
	if name != "" {
		b.WriteString(name)
		b.WriteString(": ")
	}
	b.WriteString(msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.output, b.String())
}

// root writes the untagged lines of the package-level functions.
var root = &Named{}

// Debug logs a debug message. Shown only in verbose mode.
func Debug(format string, args ...interface{}) { root.Debug(format, args...) }

// Info logs an informational message. Shown only in verbose mode.
func Info(format string, args ...interface{}) { root.Info(format, args...) }

// Warn logs a warning.
func Warn(format string, args ...interface{}) { root.Warn(format, args...) }

// Error logs an error.
func Error(format string, args ...interface{}) { root.Error(format, args...) }

// DebugFields logs a debug message with structured fields.
func DebugFields(msg string, fields map[string]interface{}) { root.DebugFields(msg, fields) }

// InfoFields logs an informational message with structured fields.
func InfoFields(msg string, fields map[string]interface{}) { root.InfoFields(msg, fields) }

// WarnFields logs a warning with structured fields.
func WarnFields(msg string, fields map[string]interface{}) { root.WarnFields(msg, fields) }

// ErrorFields logs an error with structured fields.
func ErrorFields(msg string, fields map[string]interface{}) { root.ErrorFields(msg, fields) }

// LogError logs err after a context message. A nil err is ignored.
func LogError(err error, msg string) { root.LogError(err, msg) }
