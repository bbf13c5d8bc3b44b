package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime/debug"
	"time"
)

type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

func New(service string) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

func (l *Logger) log(level slog.Level, action, message string, attrs []slog.Attr) {
	base := []slog.Attr{
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
	}
	l.handler.LogAttrs(context.TODO(), level, message, append(base, attrs...)...)
}

func (l *Logger) Info(action, message string, attrs ...slog.Attr) {
	l.log(slog.LevelInfo, action, message, attrs)
}

func (l *Logger) Debug(action, message string, attrs ...slog.Attr) {
	l.log(slog.LevelDebug, action, message, attrs)
}

func (l *Logger) Error(action, message string, err error, attrs ...slog.Attr) {
	attrs = append(attrs, slog.Group("error",
		slog.String("msg", err.Error()),
		slog.String("stack", string(debug.Stack())),
	))
	l.log(slog.LevelError, action, message, attrs)
}
