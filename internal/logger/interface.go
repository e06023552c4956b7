package logger

import "context"

// Logger is a leveled, printf-style logger. The context may carry a request
// id (see WithRequestID) which is prefixed to every line.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
