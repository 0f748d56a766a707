package logger

import (
	"GuardianesDelFuego/internal/console"
	"GuardianesDelFuego/internal/paths"
	"GuardianesDelFuego/internal/version"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
	charmlog "charm.land/log/v2"
	"github.com/lmittmann/tint"
)

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	logAt(ctx, time.Now(), level, msg, args...)
}

// logAt formats printf-style messages and splits multi-line ones into one record per line.
func logAt(ctx context.Context, t time.Time, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	msgStr := resolveMsg(msg)
	if len(args) > 0 && strings.Contains(msgStr, "%") {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil
	}

	lines := strings.Split(msgStr, "\n")
	for i, line := range lines {
		r := slog.NewRecord(t, level, line, 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// Custom log levels
const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
	LevelFatal = slog.Level(12)
)

// LevelVar allows dynamic changing of the console log level
var LevelVar = new(slog.LevelVar)

// FileLevelVar controls the log file level
var FileLevelVar = new(slog.LevelVar)

var (
	logFileMu sync.Mutex
	logFile   *os.File
)

func init() {
	LevelVar.Set(LevelWarn)
	FileLevelVar.Set(LevelInfo)
}

// SetLevel sets the console level. The file always records at least Info.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

func levelLabel(level slog.Level) string {
	switch {
	case level <= LevelTrace:
		return "TRACE"
	case level <= LevelDebug:
		return "DEBUG"
	case level <= LevelInfo:
		return "INFO "
	case level <= LevelWarn:
		return "WARN "
	case level <= LevelError:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// newConsoleHandler builds the stderr handler. It is muted while the TUI owns the terminal.
func newConsoleHandler(w io.Writer) slog.Handler {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Prefix:          version.CommandName,
		Level:           charmlog.Level(LevelTrace),
	})
	styles := charmlog.DefaultStyles()
	styles.Levels[charmlog.Level(LevelTrace)] = lipgloss.NewStyle().SetString("TRAC").Bold(true).Foreground(lipgloss.Color("63"))
	styles.Levels[charmlog.Level(LevelFatal)] = lipgloss.NewStyle().SetString("FATA").Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#E53935"))
	l.SetStyles(styles)
	return &levelGate{next: l, level: LevelVar, muteInTUI: true}
}

// newFileHandler builds the uncolored log file handler.
func newFileHandler(w io.Writer) slog.Handler {
	replaceAttrFile := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			a.Value = slog.StringValue("[" + levelLabel(level) + "]")
		}
		return a
	}
	return tint.NewHandler(w, &tint.Options{
		Level:       FileLevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     true,
		ReplaceAttr: replaceAttrFile,
	})
}

// NewLogger creates the default logger: console (stderr) plus the log file under the XDG state dir.
func NewLogger() *slog.Logger {
	handlers := []slog.Handler{newConsoleHandler(os.Stderr)}

	if w, err := openLogFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
	} else {
		handlers = append(handlers, newFileHandler(w))
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

// NewWriterLogger creates a logger writing only to w (used in tests).
func NewWriterLogger(w io.Writer) *slog.Logger {
	return slog.New(newFileHandler(w))
}

func openLogFile() (*os.File, error) {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	path := paths.GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	logFile = f
	return f, nil
}

// Cleanup flushes and closes the log file.
func Cleanup() {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFile != nil {
		_ = logFile.Sync()
		_ = logFile.Close()
		logFile = nil
	}
}

// levelGate applies a dynamic level to a handler and optionally mutes it while the TUI runs.
type levelGate struct {
	next      slog.Handler
	level     slog.Leveler
	muteInTUI bool
}

func (h *levelGate) Enabled(ctx context.Context, level slog.Level) bool {
	if h.muteInTUI && console.IsTUIEnabled() {
		return false
	}
	return level >= h.level.Level() && h.next.Enabled(ctx, level)
}

func (h *levelGate) Handle(ctx context.Context, r slog.Record) error {
	return h.next.Handle(ctx, r)
}

func (h *levelGate) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelGate{next: h.next.WithAttrs(attrs), level: h.level, muteInTUI: h.muteInTUI}
}

func (h *levelGate) WithGroup(name string) slog.Handler {
	return &levelGate{next: h.next.WithGroup(name), level: h.level, muteInTUI: h.muteInTUI}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// Global helpers for custom levels that don't satisfy standard slog methods
func Trace(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Warn(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelError, msg, args...)
}

func getSystemInfo() []string {
	var info []string

	info = append(info, fmt.Sprintf("%s [%s]", version.ApplicationName, version.Version))
	info = append(info, "")

	executable, _ := os.Executable()
	info = append(info, fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()))
	info = append(info, "")

	info = append(info, fmt.Sprintf("ARCH:             %s", runtime.GOARCH))
	info = append(info, fmt.Sprintf("OS:               %s", runtime.GOOS))
	info = append(info, fmt.Sprintf("LOGFILE:          %s", paths.GetLogFilePath()))
	info = append(info, "")

	currentUser, err := user.Current()
	if err == nil {
		info = append(info, fmt.Sprintf("DETECTED_UNAME:   %s", currentUser.Username))
		info = append(info, fmt.Sprintf("DETECTED_HOMEDIR: %s", currentUser.HomeDir))
	} else {
		info = append(info, fmt.Sprintf("User Info Error: %v", err))
	}

	return info
}

// Fatal logs a message at FatalLevel with system info and a stack trace, then panics with FatalError.
func Fatal(ctx context.Context, msg any, args ...any) {
	FatalWithStackSkip(ctx, 1, msg, args...)
}

// FatalWithStackSkip is Fatal with extra caller frames skipped from the trace.
func FatalWithStackSkip(ctx context.Context, skip int, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(2+skip, pc)
	frames := runtime.CallersFrames(pc[:n])

	var infoLines []string
	for _, i := range getSystemInfo() {
		if i != "" {
			infoLines = append(infoLines, "  "+i)
		} else {
			infoLines = append(infoLines, "")
		}
	}

	var allFrames []runtime.Frame
	for {
		frame, more := frames.Next()
		allFrames = append(allFrames, frame)
		if !more {
			break
		}
	}

	width := len(fmt.Sprintf("%d", len(allFrames)-1))
	wd, _ := os.Getwd()

	// Main (last) -> caller (first)
	var traceLines []string
	indent := ""
	for i := len(allFrames) - 1; i >= 0; i-- {
		frame := allFrames[i]
		if wd != "" {
			if rel, err := filepath.Rel(wd, frame.File); err == nil {
				if !strings.HasPrefix(rel, "..") && !strings.HasPrefix(rel, string(filepath.Separator)) {
					frame.File = "./" + filepath.ToSlash(rel)
				}
			}
		}

		suffix := ""
		arrowIndent := indent
		if i < len(allFrames)-1 {
			suffix = "└>"
			if len(indent) >= 2 {
				arrowIndent = indent[:len(indent)-2]
			}
		}

		traceLines = append(traceLines, fmt.Sprintf("  %*d: %s%s%s:%d (%s)",
			width, i, arrowIndent, suffix, frame.File, frame.Line, filepath.Base(frame.Function)))
		indent += "  "
	}

	output := []any{
		"### BEGIN SYSTEM INFORMATION AND STACK TRACE ###",
		infoLines,
		"",
		traceLines,
		"### END SYSTEM INFORMATION AND STACK TRACE ###",
		"",
		fmt.Sprintf(resolveMsg(msg), args...),
		"",
		"Please let the dev know of this error.",
	}

	logAt(ctx, now, LevelFatal, output)

	panic(FatalError{})
}

// FatalNoTrace logs a message at FatalLevel without stack trace and exits
func FatalNoTrace(ctx context.Context, msg any, args ...any) {
	output := []any{
		fmt.Sprintf(resolveMsg(msg), args...),
		"",
		"Please let the dev know of this error.",
	}
	logAt(ctx, time.Now(), LevelFatal, output)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls
// This allows the main run loop to recover and perform cleanup before exiting
type FatalError struct{}
