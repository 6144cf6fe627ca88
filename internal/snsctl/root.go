// Package snsctl implements the operator command line: applying
// migrations, loading the seed fixture and printing build data.
package snsctl

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/snsplatform/internal/dbx"
	"github.com/dmitrijs2005/snsplatform/internal/logging"
	"github.com/dmitrijs2005/snsplatform/internal/server/config"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/snsplatform/internal/server/seed"
)

// Seams for tests.
var (
	openDB = func(ctx context.Context, dsn string) (*sql.DB, error) {
		return dbx.Open(ctx, dsn, dbx.DefaultPoolOptions)
	}
	newRepositoryManager = func() repomanager.RepositoryManager {
		return repomanager.NewPostgresRepositoryManager()
	}
	runSeed             = seed.Run
	lookupEnv           = os.LookupEnv
	logOutput io.Writer = os.Stderr
)

type options struct {
	dsn      string
	logLevel string
}

// env is what every subcommand works with once flags are resolved.
type env struct {
	cfg    *config.Config
	logger logging.Logger
}

// resolve applies defaults, then the environment, then any flags the
// user set explicitly.
func (o *options) resolve(cmd *cobra.Command) *env {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ApplyEnv(lookupEnv)

	if cmd.Flags().Changed("dsn") {
		cfg.DatabaseDSN = o.dsn
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	logger := logging.NewJSONLogger(logOutput, cfg.LogLevel).With("module", "snsctl")
	return &env{cfg: cfg, logger: logger}
}

// openMigrated opens the pool and brings the schema up to date. The
// caller closes the returned pool.
func (e *env) openMigrated(ctx context.Context, rm repomanager.RepositoryManager) (*sql.DB, error) {
	db, err := openDB(ctx, e.cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return db, nil
}

// NewRootCmd builds the snsctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "snsctl [command] [flags]",
		Short:         "snsctl: database tooling for the SNS platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "PostgreSQL DSN (overrides DATABASE_URL)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
