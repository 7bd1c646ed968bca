package analyze

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	timefmt "github.com/itchyny/timefmt-go"
)

// LogLevel is the severity of a log record.
type LogLevel int

const (
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a level name, defaulting to LevelWarn for anything it
// doesn't recognize.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "INFO":
		return LevelInfo
	case "DEBUG":
		return LevelDebug
	default:
		return LevelWarn
	}
}

// Logger is the interface the driver logs through as it walks blocks and
// subroutines. With returns a child logger carrying additional context
// fields, so a caller can log every message for one subroutine walk already
// tagged with its address.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	With(fields map[string]any) Logger
}

// textFormatter emits one line per record: [LEVEL] timestamp msg key=val ...
type textFormatter struct{}

func (f *textFormatter) format(ts time.Time, level LogLevel, msg string, fields map[string]any) []byte {
	var b strings.Builder
	b.Grow(128)

	b.WriteByte('[')
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(timefmt.Format(ts.UTC(), "%Y-%m-%dT%H:%M:%S%z"))
	b.WriteByte(' ')
	b.WriteString(msg)

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(fmt.Sprint(fields[k]))
		}
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

// defaultLogger is a mutex-guarded text logger supporting With() context.
type defaultLogger struct {
	out       io.Writer
	level     LogLevel
	formatter *textFormatter

	baseFields map[string]any

	mu *sync.Mutex
}

// NewLogger returns a Logger writing formatted lines to w at the given
// level. A nil w writes to os.Stderr.
func NewLogger(level LogLevel, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &defaultLogger{
		out:        w,
		level:      level,
		formatter:  &textFormatter{},
		baseFields: make(map[string]any),
		mu:         &sync.Mutex{},
	}
}

// noopLogger discards everything; it's the driver's default so that
// embedding callers don't pay for logging they never asked for.
type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)   {}
func (noopLogger) Infof(format string, args ...any)    {}
func (noopLogger) Warnf(format string, args ...any)    {}
func (noopLogger) Errorf(format string, args ...any)   {}
func (l noopLogger) With(fields map[string]any) Logger { return l }

// NewNoopLogger returns a Logger that discards all output.
func NewNoopLogger() Logger {
	return noopLogger{}
}

func (l *defaultLogger) isEnabled(level LogLevel) bool {
	return level <= l.level
}

func (l *defaultLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make(map[string]any, len(l.baseFields)+len(fields))
	for k, v := range l.baseFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &defaultLogger{
		out:        l.out,
		level:      l.level,
		formatter:  l.formatter,
		baseFields: merged,
		mu:         l.mu,
	}
}

func (l *defaultLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *defaultLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *defaultLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *defaultLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *defaultLogger) logf(level LogLevel, format string, args ...any) {
	if !l.isEnabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)

	fields := make(map[string]any, len(l.baseFields))
	for k, v := range l.baseFields {
		fields[k] = v
	}

	line := l.formatter.format(time.Now(), level, msg, fields)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(line)
}
