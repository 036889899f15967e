package utils

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"calendar-server/internal/config"
)

func GenerateTraceId() string {
	return uuid.New().String()
}

// LogEntry writes message to entry at the given level. Unknown levels are logged as info.
func LogEntry(entry *log.Entry, level, message string) {
	switch level {
	case "debug":
		entry.Debug(message)
	case "info":
		entry.Info(message)
	case "warn":
		entry.Warn(message)
	case "error":
		entry.Error(message)
	case "fatal":
		entry.Fatal(message)
	case "panic":
		entry.Panic(message)
	default:
		entry.Info(message)
	}
}

func LogMessage(level, message string) {
	entry := log.WithFields(log.Fields{
		"service": config.ServiceName(),
	})

	LogEntry(entry, level, message)
}

// LogMessageWithFields logs message with the trace id stored in ctx by the InjectTrace middleware.
func LogMessageWithFields(ctx context.Context, level, message string) {
	LogEntry(requestEntry(ctx), level, message)
}

func LogMessageWithFieldsAndError(ctx context.Context, level, message string, err error) {
	LogEntry(requestEntry(ctx).WithError(err), level, message)
}

// TraceId returns the trace id of the request, or an empty string outside of a traced request.
func TraceId(ctx context.Context) string {
	traceId, _ := ctx.Value(TraceIdKey.String()).(string)
	return traceId
}

func requestEntry(ctx context.Context) *log.Entry {
	return log.WithFields(log.Fields{
		"traceId": TraceId(ctx),
		"service": config.ServiceName(),
	})
}
