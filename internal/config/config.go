package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Backend names.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// EnvPrefix prefixes every environment override, e.g. VOLTIZ_LOG_LEVEL.
const EnvPrefix = "VOLTIZ"

// Config holds every runtime setting.
type Config struct {
	Backend string `mapstructure:"backend"`
	User    string `mapstructure:"user"`

	DB          DB          `mapstructure:"db"`
	Redis       Redis       `mapstructure:"redis"`
	Log         Log         `mapstructure:"log"`
	Quiz        Quiz        `mapstructure:"quiz"`
	Certificate Certificate `mapstructure:"certificate"`
}

type DB struct {
	// Path of the SQLite file. Empty resolves through XDG.
	Path string `mapstructure:"path"`
}

type Redis struct {
	URL    string `mapstructure:"url"`
	Prefix string `mapstructure:"prefix"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

type Quiz struct {
	// MaxAttempts caps wrong answers per question; 0 is unlimited.
	MaxAttempts int `mapstructure:"max_attempts"`
}

type Certificate struct {
	// Seed fixes the verification code sequence; 0 picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

// Options controls where configuration is read from.
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string

	// EnvFile is loaded into the environment first. Missing is fine.
	EnvFile string

	// Flags are bound over env and file values.
	Flags *pflag.FlagSet
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{
	"backend":    "backend",
	"user":       "user",
	"db.path":    "db",
	"log.level":  "log-level",
	"log.format": "log-format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendSQLite)
	v.SetDefault("user", "learner")
	v.SetDefault("db.path", "")
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("redis.prefix", "voltiz:")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("quiz.max_attempts", 0)
	v.SetDefault("certificate.seed", 0)
}

// Load resolves configuration with precedence flags > env > file > defaults.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("voltiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "voltiz"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Debug().Msg("no config file found, using defaults and environment")
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("config file loaded")
	}

	if opts.Flags != nil {
		for key, name := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that cannot be fixed by a default.
func (c *Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q (want sqlite, redis or memory)", c.Backend))
	}
	if strings.TrimSpace(c.User) == "" {
		errs = append(errs, errors.New("user must not be empty"))
	}
	if c.Quiz.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("quiz.max_attempts must be >= 0, got %d", c.Quiz.MaxAttempts))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q (want console or json)", c.Log.Format))
	}
	return errors.Join(errs...)
}
