package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"desktop-assistant/internal/application/port/output"
)

var _ output.LoggerPort = (*Adapter)(nil)

// Adapter implements LoggerPort on top of zap, writing structured JSON lines
// to a timestamped file under ./log/ so session traces survive the process.
type Adapter struct {
	sugar *zap.SugaredLogger
	base  *zap.Logger
}

func NewAdapter() (*Adapter, error) {
	if err := os.MkdirAll("log", 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	filename := filepath.Join("log", time.Now().Format("2006-01-02_15-04-05")+"_session.log")
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)

	base := zap.New(core)
	return &Adapter{sugar: base.Sugar(), base: base}, nil
}

func (l *Adapter) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *Adapter) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l *Adapter) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *Adapter) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }

func (l *Adapter) WithField(key string, value any) output.LoggerPort {
	return &Adapter{sugar: l.sugar.With(key, value), base: l.base}
}

func (l *Adapter) Close() error {
	return l.base.Sync()
}
