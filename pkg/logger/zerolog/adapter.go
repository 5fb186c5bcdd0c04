package zerolog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/raykavin/tafx/pkg/logger"
)

// Adapter exposes a zerolog.Logger as a logger.Logger
type Adapter struct {
	log *zerolog.Logger
}

func NewAdapter(l *zerolog.Logger) *Adapter {
	return &Adapter{log: l}
}

func (z *Adapter) with(ctx zerolog.Context) logger.Logger {
	l := ctx.Logger()
	return &Adapter{log: &l}
}

func (z *Adapter) WithField(key string, value any) logger.Logger {
	return z.with(z.log.With().Interface(key, value))
}

func (z *Adapter) WithFields(fields map[string]any) logger.Logger {
	return z.with(z.log.With().Fields(fields))
}

func (z *Adapter) WithError(err error) logger.Logger {
	return z.with(z.log.With().Str(zerolog.ErrorFieldName, errString(err)))
}

func (z *Adapter) Trace(args ...any) { z.log.Trace().Msg(fmt.Sprint(args...)) }
func (z *Adapter) Debug(args ...any) { z.log.Debug().Msg(fmt.Sprint(args...)) }
func (z *Adapter) Info(args ...any)  { z.log.Info().Msg(fmt.Sprint(args...)) }
func (z *Adapter) Warn(args ...any)  { z.log.Warn().Msg(fmt.Sprint(args...)) }
func (z *Adapter) Error(args ...any) { z.log.Error().Msg(fmt.Sprint(args...)) }
func (z *Adapter) Fatal(args ...any) { z.log.Fatal().Msg(fmt.Sprint(args...)) }

func (z *Adapter) Tracef(format string, args ...any) { z.log.Trace().Msgf(format, args...) }
func (z *Adapter) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z *Adapter) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z *Adapter) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z *Adapter) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }
func (z *Adapter) Fatalf(format string, args ...any) { z.log.Fatal().Msgf(format, args...) }

// SetLevel changes the level of this logger only
func (z *Adapter) SetLevel(level logger.Level) {
	l := z.log.Level(toZerologLevel(level))
	z.log = &l
}

func (z *Adapter) GetLevel() logger.Level {
	return toLevel(z.log.GetLevel())
}

func toLevel(level zerolog.Level) logger.Level {
	switch level {
	case zerolog.TraceLevel:
		return logger.TraceLevel
	case zerolog.DebugLevel:
		return logger.DebugLevel
	case zerolog.InfoLevel:
		return logger.InfoLevel
	case zerolog.WarnLevel:
		return logger.WarnLevel
	case zerolog.ErrorLevel:
		return logger.ErrorLevel
	case zerolog.FatalLevel:
		return logger.FatalLevel
	default:
		return logger.Disabled
	}
}

func toZerologLevel(level logger.Level) zerolog.Level {
	switch level {
	case logger.TraceLevel:
		return zerolog.TraceLevel
	case logger.DebugLevel:
		return zerolog.DebugLevel
	case logger.InfoLevel:
		return zerolog.InfoLevel
	case logger.WarnLevel:
		return zerolog.WarnLevel
	case logger.ErrorLevel:
		return zerolog.ErrorLevel
	case logger.FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}
