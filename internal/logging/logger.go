package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams configures the process-wide logrus logger.
type SetupParams struct {
	FileName   string
	Level      string
	FormatJSON bool
}

// Setup points logrus at a rotating log file. The TUI owns the terminal, so
// without a file name logs are discarded rather than written to stdout.
// The returned closer flushes and closes the file.
func Setup(params SetupParams) (io.Closer, error) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	logrus.SetLevel(GetLevel(params.Level))

	if params.FileName == "" {
		logrus.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	if !strings.HasSuffix(params.FileName, ".log") {
		params.FileName += ".log"
	}
	if err := os.MkdirAll(filepath.Dir(params.FileName), 0o755); err != nil {
		return nil, err
	}

	lj := &lumberjack.Logger{
		Filename:   params.FileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  false,
		Compress:   true,
	}
	logrus.SetOutput(lj)
	return lj, nil
}

// GetLevel maps a level name to a logrus level. Unknown names mean info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
