package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New はコンソール向けのロガーを作成
//
// verboseが真ならDebugレベル、偽ならInfoレベル。
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
