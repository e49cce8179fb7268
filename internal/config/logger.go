package config

import "log/slog"

type LoggerFormat string

const (
	LoggerFormatText LoggerFormat = "text"
	LoggerFormatJSON LoggerFormat = "json"
)

type Logger struct {
	Level  slog.Level   `env:"LEVEL,expand" envDefault:"INFO"`
	Format LoggerFormat `env:"FORMAT,expand" envDefault:"text"`
}
