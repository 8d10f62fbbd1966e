package internal

import (
	"time"
)

type Config struct {
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,required=true"`

	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`

	ChannelBinPath string `env:"CHANNEL_BIN_PATH,required=true"`
	ChannelHost    string `env:"CHANNEL_HOST,required=true"`
	ChannelPort    int    `env:"CHANNEL_PORT,required=true"`

	// InitWatchdogTimeout bounds how long pairing may sit in INITIALIZING
	// before the watchdog logs process diagnostics.
	InitWatchdogTimeout time.Duration `env:"INIT_WATCHDOG_TIMEOUT,required=true"`

	ReadyTimeout      time.Duration `env:"READY_TIMEOUT,required=true"`
	ReadyPollInterval time.Duration `env:"READY_POLL_INTERVAL,required=true"`

	ResolveMaxAttempts  int           `env:"RESOLVE_MAX_ATTEMPTS,required=true"`
	ResolveBackoffBase  time.Duration `env:"RESOLVE_BACKOFF_BASE,required=true"`
	ResolveBackoffCap   time.Duration `env:"RESOLVE_BACKOFF_CAP,required=true"`
	SyncAttempts        int           `env:"SYNC_ATTEMPTS,required=true"`
	SyncInterval        time.Duration `env:"SYNC_INTERVAL,required=true"`
	ConfidenceThreshold int           `env:"CONFIDENCE_THRESHOLD,required=true"`
}
