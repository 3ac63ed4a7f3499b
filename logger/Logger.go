package logger

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

// Logger writes JSON lines to a rotating file and optionally echoes to stdout.
// Echo must stay off while the game screen owns the terminal.
type Logger struct {
	Echo bool
}

type loggerProperties struct {
	filename   string
	maxSize    int
	maxBackups int
	maxAge     int
	compress   bool
	level      string
}

func readLoggerProperties(v *viper.Viper) loggerProperties {
	return loggerProperties{
		filename:   cast.ToString(v.Get("logFilename")),
		maxSize:    cast.ToInt(v.Get("maxSize")),
		maxBackups: cast.ToInt(v.Get("maxBackups")),
		maxAge:     cast.ToInt(v.Get("maxAge")),
		compress:   cast.ToBool(v.Get("compress")),
		level:      cast.ToString(v.Get("level")),
	}
}

// Init reads logger.properties from dir and points logrus at a rotating file.
// Level changes in the file are picked up while running.
func (l *Logger) Init(dir string) error {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)
	v.SetDefault("logFilename", "./logs/pong.log")
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read logger properties: %w", err)
	}

	props := readLoggerProperties(v)

	loggerConfig := &lumberjack.Logger{
		Filename:   props.filename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(loggerConfig)
	logrus.SetLevel(ParseLevel(props.level))

	v.OnConfigChange(func(e fsnotify.Event) {
		level := ParseLevel(cast.ToString(v.Get("level")))
		logrus.SetLevel(level)
		logrus.WithField("file", e.Name).Info(fmt.Sprintf(LevelReloadedMsg, level))
	})
	v.WatchConfig()

	return nil
}

func ParseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// WithMatch tags every entry with the match id.
func (l *Logger) WithMatch(id string) *logrus.Entry {
	return logrus.WithField("match", id)
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.echo("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal:", message)
	logrus.Fatal(message)
}

func (l *Logger) echo(prefix, message string) {
	if l.Echo {
		fmt.Println(prefix, message)
	}
}
