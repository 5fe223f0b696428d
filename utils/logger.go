package utils

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel enumerates severity tiers.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l LogLevel) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLogLevel maps a config/flag value ("debug", "info", ...) to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	for i, n := range levelNames {
		if strings.EqualFold(s, n) {
			return LogLevel(i), nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger is a levelled logger used across the extractor, backed by zap.
// Everything goes to stderr so that stdout stays free for the status line.
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	zl    *zap.Logger
	sugar *zap.SugaredLogger
	file  *os.File
}

var (
	globalMu     sync.Mutex
	globalLogger *Logger
)

// InitLogger creates the process logger. logFilePath is optional; when set,
// records are teed into it as well.
func InitLogger(minLevel LogLevel, logFilePath string) *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	syncers := []zapcore.WriteSyncer{zapcore.Lock(os.Stderr)}

	var f *os.File
	if logFilePath != "" {
		var err error
		f, err = os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			syncers = append(syncers, zapcore.AddSync(f))
		} else {
			fmt.Fprintf(os.Stderr, "[WARN] could not open log file %s: %v\n", logFilePath, err)
		}
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(syncers...),
		zap.NewAtomicLevelAt(minLevel.zapLevel()),
	)
	zl := zap.New(core)

	if globalLogger != nil {
		globalLogger.Close()
	}
	globalLogger = &Logger{
		level: minLevel,
		zl:    zl,
		sugar: zl.Sugar(),
		file:  f,
	}
	return globalLogger
}

// L returns the process logger, falling back to an INFO stderr logger when
// InitLogger has not been called (tests, library use).
func L() *Logger {
	globalMu.Lock()
	lg := globalLogger
	globalMu.Unlock()
	if lg == nil {
		return InitLogger(INFO, "")
	}
	return lg
}

// Close flushes zap and closes the log file, if any.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.zl.Sync()
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

// Level reports the minimum level this logger emits.
func (l *Logger) Level() LogLevel { return l.level }

func (l *Logger) Debug(f string, a ...any) { l.sugar.Debugf(f, a...) }
func (l *Logger) Info(f string, a ...any)  { l.sugar.Infof(f, a...) }
func (l *Logger) Warn(f string, a ...any)  { l.sugar.Warnf(f, a...) }
func (l *Logger) Error(f string, a ...any) { l.sugar.Errorf(f, a...) }
func (l *Logger) Fatal(f string, a ...any) { l.sugar.Fatalf(f, a...) }
