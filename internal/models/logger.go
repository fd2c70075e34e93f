package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which queries are logged as warnings.
const slowQuery = 200 * time.Millisecond

// logger sends gorm logs to zerolog.
type logger struct {
	Logger zerolog.Logger
	Level  gorm_logger.LogLevel
}

func newLogger(l zerolog.Logger) *logger {
	return &logger{
		Logger: l.With().Str("component", "gorm").Logger(),
		Level:  gorm_logger.Info,
	}
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.Level = level
	return &c
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	if l.Level >= gorm_logger.Info {
		l.Logger.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	if l.Level >= gorm_logger.Warn {
		l.Logger.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	if l.Level >= gorm_logger.Error {
		l.Logger.Error().Msgf(s, args...)
	}
}

// expected reports whether err is part of normal operation and
// therefore not logged as error.
func expected(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, ErrResourceNotFound) ||
		errors.Is(err, ErrHandleTaken)
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Level == gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	event := func(e *zerolog.Event) *zerolog.Event {
		return e.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed)
	}

	switch {
	case err != nil && !expected(err) && l.Level >= gorm_logger.Error:
		event(l.Logger.Error()).Err(err).Msg("query failed")
	case elapsed > slowQuery && l.Level >= gorm_logger.Warn:
		event(l.Logger.Warn()).Msg("slow query")
	case l.Level >= gorm_logger.Info:
		event(l.Logger.Debug()).Msg("query")
	}
}
