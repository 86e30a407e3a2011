package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/certificate"
	"github.com/abhisek/voltiz/internal/config"
	"github.com/abhisek/voltiz/internal/logger"
	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/quiz"
	"github.com/abhisek/voltiz/internal/store"
)

// cli carries state shared by every subcommand of one invocation.
type cli struct {
	configFile string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "voltiz",
		Short: "Electronics quiz with answer checking, badges and streaks",
		Long: "voltiz checks free-text electronics answers such as \"4.7k\" or \"100nF\",\n" +
			"tracks attempts and hints, and rewards progress with badges, streaks and certificates.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{File: c.configFile, Flags: cmd.Flags()})
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "Config file (default ./voltiz.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides VOLTIZ_DB_PATH)")
	pf.String("backend", config.BackendSQLite, "Storage backend: sqlite, redis or memory")
	pf.String("user", "learner", "Learner ID progress is recorded under")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.String("log-format", "console", "Log format: console or json")

	root.AddCommand(
		newQuizCmd(c),
		newAnswerCmd(c),
		newHintCmd(c),
		newResetCmd(c),
		newBadgesCmd(c),
		newStatsCmd(c),
		newDailyCmd(c),
		newCertificateCmd(c),
		newHistoryCmd(c),
		newPlayCmd(c),
		newVersionCmd(),
	)
	return root
}

// Execute runs the voltiz command tree.
func Execute() error {
	return newRootCmd().Execute()
}

// openBackend opens the configured storage backend.
func openBackend(ctx context.Context, cfg *config.Config) (store.Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendRedis:
		r, err := store.OpenRedis(ctx, cfg.Redis.URL, cfg.Redis.Prefix)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		return r, nil
	}

	path := cfg.DB.Path
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create DB dir: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug().Str("path", path).Msg("sqlite store opened")
	return st, nil
}

// withEngine opens the backend, builds a progress engine over the
// compiled-in bank and runs fn with it.
func (c *cli) withEngine(cmd *cobra.Command, fn func(ctx context.Context, e *progress.Engine) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	bank, err := quiz.Default()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	backend, err := openBackend(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	engine := progress.New(bank, store.NewRepo(backend), progress.Options{
		MaxAttempts: c.cfg.Quiz.MaxAttempts,
		Rand:        certificate.NewRand(c.cfg.Certificate.Seed),
	})
	return fn(ctx, engine)
}
