package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sungminna/exchange-credentials/internal/migrations"
)

func migrateCmd(b backend, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the accounts schema",
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, release, err := b.openSQL(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer release()

			if err := migrations.PostgresDown(db, steps); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", max(steps, 1))
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				db, release, err := b.openSQL(cmd.Context(), opts.cfg)
				if err != nil {
					return err
				}
				defer release()

				if err := migrations.PostgresUp(db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			},
		},
		down,
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				db, release, err := b.openSQL(cmd.Context(), opts.cfg)
				if err != nil {
					return err
				}
				defer release()

				version, dirty, err := migrations.PostgresVersion(db)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			},
		},
	)
	return cmd
}
