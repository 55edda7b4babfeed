package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
	// Silent descarta todo; lo usa Nop().
	Silent
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	case "silent", "off":
		return Silent
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	case Silent:
		return "silent"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Fields son los pares clave/valor de una línea de log.
type Fields map[string]any

// Logger es el canal de log que reciben stores y handlers.
// Los stores reportan por aquí los fallos que no devuelven al caller.
type Logger interface {
	With(fields Fields) Logger

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

type Options struct {
	Level  Level
	Format Format
	App    string
	// Output por defecto es os.Stdout.
	Output io.Writer
}

type stdLogger struct {
	mu     *sync.Mutex
	std    *log.Logger
	level  Level
	format Format
	base   Fields
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	base := Fields{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	return &stdLogger{
		mu:     &sync.Mutex{},
		std:    log.New(out, "", 0),
		level:  opts.Level,
		format: format,
		base:   base,
	}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error|silent (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME (default medication-reminder)
func NewFromEnv() Logger {
	app := os.Getenv("APP_NAME")
	if strings.TrimSpace(app) == "" {
		app = "medication-reminder"
	}
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    app,
	})
}

// Nop devuelve un logger que no escribe nada (tests).
func Nop() Logger {
	return New(Options{Level: Silent, Output: io.Discard})
}

func (l *stdLogger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}

	return &stdLogger{
		mu:     l.mu,
		std:    l.std,
		level:  l.level,
		format: l.format,
		base:   merge(l.base, fields),
	}
}

func (l *stdLogger) Debug(msg string, fields Fields) { l.write(Debug, msg, fields) }
func (l *stdLogger) Info(msg string, fields Fields)  { l.write(Info, msg, fields) }
func (l *stdLogger) Warn(msg string, fields Fields)  { l.write(Warn, msg, fields) }
func (l *stdLogger) Error(msg string, fields Fields) { l.write(Error, msg, fields) }

func (l *stdLogger) write(lvl Level, msg string, fields Fields) {
	if l.level == Silent || lvl < l.level {
		return
	}

	entry := merge(l.base, fields)
	entry["ts"] = time.Now().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	if l.format == FormatJSON {
		b, err := json.Marshal(entry)
		if err != nil {
			// valores no serializables: caemos a texto
			line = formatText(entry)
		} else {
			line = string(b)
		}
	} else {
		line = formatText(entry)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Println(line)
}

func merge(a, b Fields) Fields {
	out := make(Fields, len(a)+len(b)+3)
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		out[k] = v
	}
	return out
}

// formatText ordena las keys para que la salida sea estable.
func formatText(m Fields) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}
