package main

import "time"

type Config struct {
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	ElementTTL      time.Duration `env:"ELEMENT_TTL,default=15m"`
	SweepInterval   time.Duration `env:"SWEEP_INTERVAL,default=1m"`
	StatsInterval   time.Duration `env:"STATS_INTERVAL,default=30s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	CalendarURL     string        `env:"CALENDAR_URL,default=https://calendar.local/overview"`

	// Platform credential and the fast-registration target used during
	// development. Neither is consumed by the workflow core.
	BotToken    string `env:"BOT_TOKEN"`
	TestGuildID string `env:"TEST_GUILD_ID"`
}
