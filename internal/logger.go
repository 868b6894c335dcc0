package internal

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogLevel = "warn"

// NewLogger builds a JSON production logger at the given level, writing to
// output ("stdout", "stderr" or a file path). An empty level means warn.
func NewLogger(level string, output string) (*zap.Logger, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = defaultLogLevel
	}

	atomicLevel, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = atomicLevel
	config.InitialFields = map[string]interface{}{"app": "boarding-pass-scanner"}
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}
