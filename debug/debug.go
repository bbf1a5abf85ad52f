package debug

import (
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type debug struct {
	Path     bool
	COW      bool
	Codec    bool
	Contract bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("UC_DEBUG_PATH")
	d.COW = boolEnv("UC_DEBUG_COW")
	d.Codec = boolEnv("UC_DEBUG_CODEC")
	d.Contract = boolEnv("UC_DEBUG_CONTRACT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func COW() bool {
	return d.COW
}
func Codec() bool {
	return d.Codec
}
func Contract() bool {
	return d.Contract
}

var (
	logOnce sync.Once
	logger  *zap.SugaredLogger
)

// Logger returns the logger used for debug tracing. It writes
// human-readable lines to stderr.
func Logger() *zap.SugaredLogger {
	logOnce.Do(func() {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zapcore.Lock(os.Stderr),
			zapcore.DebugLevel,
		)
		logger = zap.New(core).Sugar()
	})
	return logger
}

// SetLogger replaces the debug logger, mostly for tests.
func SetLogger(l *zap.SugaredLogger) {
	logOnce.Do(func() {})
	logger = l
}

func Logf(format string, args ...any) {
	Logger().Debugf(format, args...)
}

// LogAny logs v as a structured field.
func LogAny(msg string, v any) {
	Logger().Debugw(msg, "value", v)
}
