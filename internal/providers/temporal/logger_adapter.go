package temporal

import (
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/logger"
)

// ZapLoggerAdapter adapts zap.Logger to Temporal's log.Logger interface
type ZapLoggerAdapter struct {
	logger *zap.Logger
}

// NewZapLoggerAdapter creates a new zap logger adapter for Temporal.
// A nil logger resolves to the global service logger at call time.
func NewZapLoggerAdapter(l *zap.Logger) log.Logger {
	return &ZapLoggerAdapter{logger: l}
}

func (z *ZapLoggerAdapter) base() *zap.Logger {
	if z.logger != nil {
		return z.logger
	}
	return logger.Default().With(zap.String("component", "temporal"))
}

// Debug logs a debug message
func (z *ZapLoggerAdapter) Debug(msg string, keyvals ...interface{}) {
	z.base().Debug(msg, convertKeyvalsToFields(keyvals...)...)
}

// Info logs an info message
func (z *ZapLoggerAdapter) Info(msg string, keyvals ...interface{}) {
	z.base().Info(msg, convertKeyvalsToFields(keyvals...)...)
}

// Warn logs a warning message
func (z *ZapLoggerAdapter) Warn(msg string, keyvals ...interface{}) {
	z.base().Warn(msg, convertKeyvalsToFields(keyvals...)...)
}

// Error logs an error message
func (z *ZapLoggerAdapter) Error(msg string, keyvals ...interface{}) {
	z.base().Error(msg, convertKeyvalsToFields(keyvals...)...)
}

// With returns a logger carrying the key-value pairs on every entry
func (z *ZapLoggerAdapter) With(keyvals ...interface{}) log.Logger {
	return &ZapLoggerAdapter{logger: z.base().With(convertKeyvalsToFields(keyvals...)...)}
}

// convertKeyvalsToFields converts key-value pairs to zap fields
// Temporal's log interface uses keyvals in format: key1, val1, key2, val2, ...
func convertKeyvalsToFields(keyvals ...interface{}) []zap.Field {
	if len(keyvals)%2 != 0 {
		// Odd number of keyvals, ignore last one
		keyvals = keyvals[:len(keyvals)-1]
	}

	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		if err, isErr := keyvals[i+1].(error); isErr {
			fields = append(fields, zap.NamedError(key, err))
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	return fields
}
