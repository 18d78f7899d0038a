package middleware

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"skill-swap-core/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID      = "X-Request-ID"
	HeaderIdempotencyKey = "Idempotency-Key"

	ctxRequestIDKey  = "request_id"
	maxRequestIDSize = 64
)

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

// NewLogger builds the process logger from LogConfig and installs it as the
// slog default.
func NewLogger(cfg config.LogConfig) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: timezone}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// RequestLogging logs every request twice: once on arrival and once with
// the outcome. The request id is taken from X-Request-ID when the caller
// sent a usable one and echoed back on the response.
func (l *Logger) RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := requestIDFrom(c.GetHeader(HeaderRequestID))

		c.Set(ctxRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := c.GetHeader(HeaderIdempotencyKey); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}

		l.logger.LogAttrs(context.Background(), slog.LevelInfo, "Request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		done := make([]slog.Attr, len(attrs), len(attrs)+6)
		copy(done, attrs)
		if route := c.FullPath(); route != "" {
			done = append(done, slog.String("route", route))
		}
		// auth runs inside the route group, after this middleware
		if sc, ok := GetSessionContext(c); ok {
			done = append(done, slog.String("identity", sc.Identity.String()), slog.String("role", sc.Role.String()))
		}
		done = append(done,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(startTime)),
		)
		if size := c.Writer.Size(); size > 0 {
			done = append(done, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			done = append(done, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(context.Background(), level, "Request completed", done...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func requestIDFrom(header string) string {
	header = strings.TrimSpace(header)
	if header == "" || len(header) > maxRequestIDSize || strings.ContainsAny(header, " \t\r\n") {
		return uuid.NewString()
	}
	return header
}
