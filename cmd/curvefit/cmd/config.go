package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/regression"
)

const envPrefix = "CURVEFIT"

// Configuration keys. Each is a persistent flag, a config file key and,
// upper-cased with '-' replaced by '_', a CURVEFIT_ environment variable.
const (
	keyPrecision   = "precision"
	keyRounding    = "rounding"
	keyFamilies    = "families"
	keyScoring     = "scoring"
	keyCompression = "compression"
	keyLogLevel    = "log-level"
)

var configKeys = []string{keyPrecision, keyRounding, keyFamilies, keyScoring, keyCompression, keyLogLevel}

// Config holds the settings shared by all subcommands.
type Config struct {
	Precision   int32    `mapstructure:"precision"`
	Rounding    string   `mapstructure:"rounding"`
	Families    []string `mapstructure:"families"`
	Scoring     string   `mapstructure:"scoring"`
	Compression string   `mapstructure:"compression"`
	LogLevel    string   `mapstructure:"log-level"`
}

// loadConfig merges flags, environment and the optional config file into a Config
// and validates it.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, cfgFile string) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if flag := flags.Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every setting without building anything.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > regression.MaxPrecision {
		return fmt.Errorf("%w: %d (allowed 0..%d)", errs.ErrInvalidPrecision, c.Precision, regression.MaxPrecision)
	}
	if _, err := c.FitOptions(nil); err != nil {
		return err
	}
	if _, err := format.ParseCompression(c.Compression); err != nil {
		return err
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// FitOptions converts the settings into regression options.
func (c Config) FitOptions(logger *slog.Logger) ([]regression.FitOption, error) {
	mode, err := regression.ParseRoundingMode(c.Rounding)
	if err != nil {
		return nil, err
	}
	scoring, err := regression.ParseScoring(c.Scoring)
	if err != nil {
		return nil, err
	}

	opts := []regression.FitOption{
		regression.WithPrecision(c.Precision),
		regression.WithRounding(mode),
		regression.WithScoring(scoring),
	}
	if logger != nil {
		opts = append(opts, regression.WithLogger(logger))
	}

	families, err := c.families()
	if err != nil {
		return nil, err
	}
	if len(families) > 0 {
		opts = append(opts, regression.WithFamilies(families...))
	}

	return opts, nil
}

func (c Config) families() ([]regression.Family, error) {
	var families []regression.Family
	for _, name := range c.Families {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := regression.FamilyFromString(name)
		if err != nil {
			return nil, err
		}
		families = append(families, f)
	}

	return families, nil
}

func parseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}

	return level, nil
}

// newLogger returns a text logger on w filtered at level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	l, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
