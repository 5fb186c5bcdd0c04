package zerolog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures New
type Options struct {
	Level   string
	Layout  string // timestamp layout of the console writer
	Colored bool
	JSON    bool
	Out     io.Writer // defaults to stdout
}

// New builds a zerolog logger. JSON output skips the console formatting.
func New(opts Options) (*Adapter, error) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	layout := opts.Layout
	if layout == "" {
		layout = time.DateTime
	}

	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:           out,
			NoColor:       !opts.Colored,
			TimeFormat:    layout,
			FormatLevel:   formatLevel,
			FormatMessage: formatMessage,
			FormatCaller:  formatCaller,
			FormatTimestamp: func(i any) string {
				return formatTimestamp(i, layout)
			},
		}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return NewAdapter(&logger), nil
}

func formatLevel(i any) string {
	level, _ := i.(string)
	switch level {
	case zerolog.LevelTraceValue, zerolog.LevelDebugValue:
		return term.Cyanf("[%s]", strings.ToUpper(level[:3]))
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WRN]")
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return term.Redf("[%s]", strings.ToUpper(level[:3]))
	default:
		return term.Whitef("[???]")
	}
}

func formatMessage(i any) string {
	const width = 60

	msg, _ := i.(string)
	if msg == "" {
		return ">"
	}
	if len(msg) < width {
		msg += strings.Repeat(" ", width-len(msg))
	}
	return term.Whitef("> %s", msg)
}

func formatCaller(i any) string {
	const fileWidth = 16

	name, _ := i.(string)
	if name == "" {
		return ""
	}

	file, line, ok := strings.Cut(filepath.Base(name), ":")
	if !ok {
		return filepath.Base(name)
	}
	if len(file) > fileWidth {
		file = file[:fileWidth]
	}
	return term.Yellowf("[%-*s:%4s]", fileWidth, file, line)
}

func formatTimestamp(i any, layout string) string {
	s, ok := i.(string)
	if !ok {
		return term.Cyanf("[%v]", i)
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		s = ts.Local().Format(layout)
	}
	return term.Cyanf("[%s]", s)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
