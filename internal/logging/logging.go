package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure the global logger.
type Options struct {
	Level   string
	File    string
	Verbose bool
}

// Init installs the global zerolog logger: a console writer on stderr plus an
// optional rotating file. It returns the combined writer so the HTTP request
// logger can share the same sinks.
func Init(options Options) io.Writer {
	zerolog.SetGlobalLevel(resolveLevel(options))

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}}
	if fileWriter := newFileWriter(options.File); fileWriter != nil {
		writers = append(writers, fileWriter)
	}

	multi := zerolog.MultiLevelWriter(writers...)
	log.Logger = zerolog.New(multi).
		With().
		Timestamp().
		Logger()
	return multi
}

func resolveLevel(options Options) zerolog.Level {
	if options.Verbose {
		return zerolog.DebugLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(options.Level)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func newFileWriter(path string) *lumberjack.Logger {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    16, // megabytes
		MaxBackups: 8,
		MaxAge:     90, // days
		Compress:   true,
	}
}
