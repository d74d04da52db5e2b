// Package diag wraps go.uber.org/zap behind sdk/contracts.Logger, the
// way leandrodaf/midi's internal/logger package does for its SDK
// boundary. Codecs (values/event/midi1/ump/smf/filter) never log; this
// logger exists only for mtc.Decoder and hui.SurfaceModel, which report
// state resets and ignored malformed input; the HUI ping monitor does
// not log.
package diag

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/PKsong/MIDIKit/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements contracts.Logger on top of a zap.Logger.
type ZapLogger struct {
	logger *zap.Logger
	level  contracts.LogLevel
}

// NewZapLogger builds a production zap.Logger wrapped as a
// contracts.Logger, defaulted to InfoLevel.
func NewZapLogger() contracts.Logger {
	l, _ := zap.NewProduction()
	return &ZapLogger{logger: l, level: contracts.InfoLevel}
}

func (z *ZapLogger) Info(msg string, fields ...contracts.Field)  { z.log(zapcore.InfoLevel, msg, fields...) }
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) { z.log(zapcore.ErrorLevel, msg, fields...) }
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) { z.log(zapcore.DebugLevel, msg, fields...) }
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field)  { z.log(zapcore.WarnLevel, msg, fields...) }

func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(zapcore.FatalLevel, msg, fields...)
	os.Exit(1)
}

func (z *ZapLogger) Field() contracts.Field { return &field{} }

func (z *ZapLogger) SetLevel(level contracts.LogLevel) { z.level = level }

func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) {
	// zap's production config is console/JSON only; file rotation is out
	// of scope for a protocol-core library's diagnostic logger.
}

func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	// contracts.LogLevel's constants are not ordered by severity, so the
	// configured minimum is mapped onto zap's ordering before comparing.
	minLevel := zapcore.InfoLevel
	switch z.level {
	case contracts.DebugLevel:
		minLevel = zapcore.DebugLevel
	case contracts.WarnLevel:
		minLevel = zapcore.WarnLevel
	case contracts.ErrorLevel:
		minLevel = zapcore.ErrorLevel
	case contracts.FatalLevel:
		minLevel = zapcore.FatalLevel
	}
	if level < minLevel {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	} else {
		file = filepath.Base(file)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	logMessage := fmt.Sprintf("%s [%s] %s:%d: %s%s", timestamp, level.String(), file, line, msg, formatFields(fields...))

	switch level {
	case zapcore.InfoLevel:
		z.logger.Info(logMessage)
	case zapcore.ErrorLevel:
		z.logger.Error(logMessage)
	case zapcore.DebugLevel:
		z.logger.Debug(logMessage)
	case zapcore.WarnLevel:
		z.logger.Warn(logMessage)
	case zapcore.FatalLevel:
		z.logger.Fatal(logMessage)
	}
}

func formatFields(fields ...contracts.Field) string {
	if len(fields) == 0 {
		return ""
	}
	m := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if zf, ok := f.(*field); ok {
			m[zf.key] = zf.value
		}
	}
	if len(m) == 0 {
		return ""
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf(" [failed to format fields: %v]", err)
	}
	return " " + string(b)
}

// field implements contracts.Field as a single key/value pair; each
// builder call returns a fresh field rather than mutating one, matching
// zap's own immutable-field idiom.
type field struct {
	key   string
	value interface{}
}

func (f *field) Bool(key string, val bool) contracts.Field       { return &field{key, val} }
func (f *field) Int(key string, val int) contracts.Field         { return &field{key, val} }
func (f *field) Float64(key string, val float64) contracts.Field { return &field{key, val} }
func (f *field) String(key string, val string) contracts.Field   { return &field{key, val} }
func (f *field) Time(key string, val time.Time) contracts.Field  { return &field{key, val} }
func (f *field) Int64(key string, val int64) contracts.Field     { return &field{key, val} }
func (f *field) Error(key string, val error) contracts.Field     { return &field{key, val} }
func (f *field) Uint64(key string, val uint64) contracts.Field   { return &field{key, val} }
func (f *field) Uint8(key string, val uint8) contracts.Field     { return &field{key, val} }

// NopLogger is a valid, silent Logger: the default for any constructor
// that accepts an optional contracts.Logger when the caller doesn't
// supply one.
type NopLogger struct{}

func (NopLogger) Info(string, ...contracts.Field)  {}
func (NopLogger) Error(string, ...contracts.Field) {}
func (NopLogger) Debug(string, ...contracts.Field) {}
func (NopLogger) Warn(string, ...contracts.Field)  {}
func (NopLogger) Fatal(string, ...contracts.Field) {}
func (NopLogger) Field() contracts.Field           { return &field{} }
func (NopLogger) SetLevel(contracts.LogLevel)      {}
func (NopLogger) SetDestination(contracts.LogDestination, ...string) {}
