package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "CBUSGW_LOG_LEVEL"
	EnvLogTimestamp = "CBUSGW_LOG_TIMESTAMP"
	EnvLogNoColor   = "CBUSGW_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

var configureOnce sync.Once

func ConfigureRuntime(app string) zerolog.Logger {
	return Configure(ProfileRuntime, app)
}

func ConfigureTests() zerolog.Logger {
	return Configure(ProfileTest, "test")
}

// Configure initializes the process logger once; later calls return the
// already-configured global logger.
func Configure(profile Profile, app string) zerolog.Logger {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)

		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
		ctx := zerolog.New(output).Level(cfg.Level).With().Str("app", app)
		if cfg.Timestamp {
			ctx = ctx.Timestamp()
		}
		log.Logger = ctx.Logger()
	})
	return log.Logger
}

func defaultConfig(profile Profile) Config {
	cfg := Config{Level: zerolog.InfoLevel, Timestamp: true}
	if profile == ProfileTest {
		cfg.Level = zerolog.Disabled
		cfg.Timestamp = false
		cfg.NoColor = true
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
