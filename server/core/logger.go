package core

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the server-wide logger. It defaults to a no-op so tests and library
// use stay quiet; the server binary calls InitLogger before anything else.
var Log = zap.NewNop().Sugar()

// InitLogger routes server logs to stderr and to path with size-based
// rotation (10 MB per file, 3 backups, 7 days).
func InitLogger(path string) error {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	enc := zapcore.NewConsoleEncoder(encCfg)

	tee := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(lj), zapcore.DebugLevel),
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.InfoLevel),
	)
	Log = zap.New(tee, zap.AddCaller()).Sugar()
	return nil
}

// SyncLogger flushes buffered log entries. Call on shutdown.
func SyncLogger() {
	_ = Log.Sync()
}
