package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/spf13/cobra"
	"github.com/sungminna/exchange-credentials/internal/config"
	credpostgres "github.com/sungminna/exchange-credentials/internal/infrastructure/postgres"
	"github.com/sungminna/exchange-credentials/internal/logging"
	"github.com/sungminna/exchange-credentials/internal/migrations"
	"github.com/sungminna/exchange-credentials/internal/service/credential"
	"github.com/sungminna/exchange-credentials/pkg/database/postgres"
)

// backend opens the resources commands run against. Each opener returns a
// release func the caller must invoke.
type backend struct {
	openRepository func(ctx context.Context, cfg *config.Config) (*credential.Repository, func(), error)
	openSQL        func(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error)
}

func defaultBackend() backend {
	return backend{
		openRepository: func(ctx context.Context, cfg *config.Config) (*credential.Repository, func(), error) {
			pool, err := postgres.NewPool(ctx, postgres.ConfigFrom(cfg.Database))
			if err != nil {
				return nil, nil, err
			}
			store := credpostgres.NewCredentialStore(pool, cfg.Server.StoreTimeout)
			return credential.NewRepository(store), func() { postgres.Close(pool) }, nil
		},
		openSQL: func(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error) {
			pool, err := postgres.NewPool(ctx, postgres.ConfigFrom(cfg.Database))
			if err != nil {
				return nil, nil, err
			}
			return migrations.FromPool(pool), func() { postgres.Close(pool) }, nil
		},
	}
}

type rootOptions struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd(b backend) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "credctl",
		Short:         "Administer exchange API credentials",
		Long:          "credctl manages the accounts table directly: schema migrations and per-account credential sets.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadAndValidate(opts.configPath)
			if err != nil {
				return err
			}
			// Logs go to stderr so command output stays pipeable
			if err := logging.Setup(cfg.Log, cmd.ErrOrStderr()); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv("CONFIG_PATH"), "Path to YAML config file")

	root.AddCommand(
		migrateCmd(b, opts),
		accountCmd(b, opts),
	)
	return root
}
