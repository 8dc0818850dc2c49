// Package logger configures the global zerolog logger and carries request
// and game session ids through contexts.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sessionIDKey contextKey = "session_id"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Init sets up the global logger at the given level. Unknown levels fall
// back to info. LOG_FILE, when set, receives a copy of every line.
func Init(levelName string) {
	InitWriter(levelName, os.Stdout)
}

// InitWriter is Init with an explicit console destination.
func InitWriter(levelName string, out io.Writer) {
	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	const callerWidth = 24
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		path := fmt.Sprintf("%s:%d", filepath.Base(file), line)
		if len(path) >= callerWidth {
			return path[len(path)-callerWidth:]
		}
		return path + strings.Repeat(" ", callerWidth-len(path))
	}

	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil || levelName == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: milliTimeFormat,
		NoColor:    !isDevelopmentMode(),
	}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		f, ferr := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if ferr == nil {
			output = io.MultiWriter(output, f)
		}
	}

	log.Logger = log.Output(output).With().Caller().Logger()
	log.Debug().Str("level", level.String()).Bool("dev", isDevelopmentMode()).Msg("Logger initialized")
}

func isDevelopmentMode() bool {
	return os.Getenv("DEV") == "true" || os.Getenv("DEV_MODE") == "true"
}

// NewRequestID returns a short random id for correlating a request's log lines.
func NewRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// WithRequestID returns a new context with the given request ID stored.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID from context, or empty string.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSessionID stores the game session a request operates on.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext extracts the session ID from context, or empty string.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// ForRequest returns a logger enriched with whatever ids the context carries.
// The pointer lets callers chain straight into an event.
func ForRequest(ctx context.Context) *zerolog.Logger {
	l := log.Logger.With()
	if id := RequestIDFromContext(ctx); id != "" {
		l = l.Str("requestId", id)
	}
	if id := SessionIDFromContext(ctx); id != "" {
		l = l.Str("sessionId", id)
	}
	logger := l.Logger()
	return &logger
}

// LogBody logs a request or response body at debug level, truncated to 1000
// bytes.
func LogBody(logger zerolog.Logger, field string, body []byte) {
	if len(body) == 0 {
		return
	}
	if len(body) > 1000 {
		logger.Debug().Str(field, string(body[:1000])).Bool("truncated", true).Msg("Body")
		return
	}
	logger.Debug().Str(field, string(body)).Msg("Body")
}
