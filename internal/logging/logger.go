package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2beens/gymtracker/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const maxLogFileSizeMB = 50

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	LogMaxBackups    int // 0 keeps all rotated files
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the standard logrus logger. The returned func closes the
// log file, if one is used.
func Setup(params LoggerSetupParams) func() {
	logrus.SetFormatter(newFormatter(params.LogFormatJSON))
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	out, logFile := newOutput(params)
	logrus.SetOutput(out)

	return func() {
		if logFile == nil {
			return
		}
		if err := logFile.Close(); err != nil {
			logrus.SetOutput(os.Stderr)
			logrus.Errorf("close log file: %s", err)
		}
	}
}

func newFormatter(asJSON bool) logrus.Formatter {
	if asJSON {
		return &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		}
	}
	return &logrus.TextFormatter{
		FullTimestamp: true,
	}
}

func setupSentry(params LoggerSetupParams) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              params.SentryDSN,
		Environment:      params.Environment,
		ServerName:       params.SentryServerName,
		TracesSampleRate: 1.0,
	}); err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry hook added")
}

// newOutput writes to stdout when no log file is set, otherwise to a rotated
// file, optionally mirrored to stdout.
func newOutput(params LoggerSetupParams) (io.Writer, *lumberjack.Logger) {
	if params.LogFileName == "" {
		return os.Stdout, nil
	}

	fileName := params.LogFileName
	if filepath.Ext(fileName) != ".log" {
		fileName += ".log"
	}

	logFile := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxLogFileSizeMB,
		MaxBackups: params.LogMaxBackups,
		LocalTime:  false,
		Compress:   true,
	}

	if params.LogToStdout {
		return pkg.NewFanoutWriter(os.Stdout, logFile), logFile
	}
	return logFile, logFile
}

// GetLevel parses a logrus level name, falling back to info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
