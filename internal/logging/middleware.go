package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var logDataKey = contextKey{}

// GetLogData returns the request's LogData, or nil when the middleware
// is not installed (for example in humatest handlers).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey).(*LogData)
	return logData
}

// Middleware attaches a fresh LogData to every request context and emits
// one structured line per completed operation.
func Middleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		logData.AddData("operation", ctx.Operation().OperationID)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey, logData))
		endTimer()

		entry := logData.Log().WithField("status", ctx.Status())
		if ctx.Status() >= 500 {
			entry.Errorf("Handler.%v.Error", ctx.Operation().OperationID)
			return
		}
		entry.Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
