package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/yanun0323/errors"

	"allocator/internal/engine"
)

const (
	EnvLogLevel = "ALLOCATOR_LOG_LEVEL"
	EnvFillMode = "ALLOCATOR_FILL_MODE"
	EnvCrossing = "ALLOCATOR_CROSSING"

	defaultEnvPath = ".env"
)

type Config struct {
	MaxPosition int64
	LogLevel    zerolog.Level
	FillMode    engine.FillMode
	Crossing    engine.CrossingMode
}

func Default() Config {
	return Config{
		LogLevel: zerolog.InfoLevel,
		FillMode: engine.Capped,
		Crossing: engine.SameSide,
	}
}

// LoadFromEnv loads optional settings from an env file (if it exists) and
// the environment.
// Priority: ENV > env file > defaults
func LoadFromEnv(envPath string) (Config, error) {
	cfg := Default()

	// The env file is optional; godotenv never overrides variables that are
	// already set.
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	if err := cfg.setLogLevel(os.Getenv(EnvLogLevel)); err != nil {
		return Config{}, err
	}
	if err := cfg.setFillMode(os.Getenv(EnvFillMode)); err != nil {
		return Config{}, err
	}
	if err := cfg.setCrossing(os.Getenv(EnvCrossing)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load resolves the full configuration from command-line arguments, which
// take priority over the environment.
//
// The maximum position is required. It is given either as the flag
// -maximum-position=<n> or as the single positional argument
// maximum-position=<n>. Only the text after the first '=' is read, so the
// key itself is not checked.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("allocator", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	envPath := fs.String("env", defaultEnvPath, "Path to an optional env file")
	maxPosition := fs.String("maximum-position", "", "Maximum net position a BUY may reach")
	logLevel := fs.String("log-level", "", "Log level: trace, debug, info, warn, error")
	fillMode := fs.String("fill-mode", "", "Position cap policy: 'capped' or 'uncapped'")
	crossing := fs.String("crossing", "", "Crossing rule: 'same-side' or 'opposite-side'")

	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(ErrInvalidSetting, err.Error())
	}

	cfg, err := LoadFromEnv(*envPath)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.setLogLevel(*logLevel); err != nil {
		return Config{}, err
	}
	if err := cfg.setFillMode(*fillMode); err != nil {
		return Config{}, err
	}
	if err := cfg.setCrossing(*crossing); err != nil {
		return Config{}, err
	}

	raw, err := maxPositionArg(*maxPosition, fs.Args())
	if err != nil {
		return Config{}, err
	}
	cfg.MaxPosition, err = parseMaxPosition(raw)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func maxPositionArg(flagValue string, positional []string) (string, error) {
	switch {
	case flagValue != "" && len(positional) == 0:
		return flagValue, nil
	case flagValue == "" && len(positional) == 1:
		parts := strings.Split(positional[0], "=")
		if len(parts) < 2 {
			return "", errors.Wrapf(ErrInvalidMaxPosition, "argument %q", positional[0])
		}
		return parts[1], nil
	}
	return "", ErrMissingMaxPosition
}

func parseMaxPosition(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidMaxPosition, "value %q", raw)
	}
	return v, nil
}

func (cfg *Config) setLogLevel(name string) error {
	if name == "" {
		return nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return errors.Wrapf(ErrInvalidSetting, "log level %q", name)
	}
	cfg.LogLevel = level
	return nil
}

func (cfg *Config) setFillMode(name string) error {
	if name == "" {
		return nil
	}
	mode, ok := engine.ParseFillMode(name)
	if !ok {
		return errors.Wrapf(ErrInvalidSetting, "fill mode %q", name)
	}
	cfg.FillMode = mode
	return nil
}

func (cfg *Config) setCrossing(name string) error {
	if name == "" {
		return nil
	}
	mode, ok := engine.ParseCrossingMode(name)
	if !ok {
		return errors.Wrapf(ErrInvalidSetting, "crossing %q", name)
	}
	cfg.Crossing = mode
	return nil
}
