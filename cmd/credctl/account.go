package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sungminna/exchange-credentials/internal/domain/model"
	"github.com/sungminna/exchange-credentials/internal/service/credential"
)

func accountCmd(b backend, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage credential sets",
	}

	// withRepo opens the repository for the duration of fn
	withRepo := func(cmd *cobra.Command, fn func(ctx context.Context, repo *credential.Repository) error) error {
		repo, release, err := b.openRepository(cmd.Context(), opts.cfg)
		if err != nil {
			return err
		}
		defer release()
		return fn(cmd.Context(), repo)
	}

	cmd.AddCommand(
		accountCreateCmd(withRepo),
		accountGetKeyCmd(withRepo),
		accountUpdateCmd(withRepo),
		accountRemoveKeyCmd(withRepo),
		accountRemoveCmd(withRepo),
	)
	return cmd
}

type repoRunner func(cmd *cobra.Command, fn func(ctx context.Context, repo *credential.Repository) error) error

func accountCreateCmd(withRepo repoRunner) *cobra.Command {
	var signKey string

	cmd := &cobra.Command{
		Use:   "create <uid> <exchange> <api-key>",
		Short: "Store a new credential set",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			exchange, err := model.ParseExchangeName(args[1])
			if err != nil {
				return err
			}
			var sk *string
			if cmd.Flags().Changed("sign-key") {
				sk = &signKey
			}

			return withRepo(cmd, func(ctx context.Context, repo *credential.Repository) error {
				id, err := repo.CreateAccount(ctx, model.AccountID(args[0]), exchange, args[2], sk)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s on %s\n", id, exchange)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&signKey, "sign-key", "", "Signing secret")
	return cmd
}

func accountGetKeyCmd(withRepo repoRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "get-key <uid> <exchange>",
		Short: "Print the stored api key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			exchange, err := model.ParseExchangeName(args[1])
			if err != nil {
				return err
			}

			return withRepo(cmd, func(ctx context.Context, repo *credential.Repository) error {
				key, err := repo.GetAPIKey(ctx, model.AccountID(args[0]), exchange)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), key)
				return nil
			})
		},
	}
}

func accountUpdateCmd(withRepo repoRunner) *cobra.Command {
	var apiKey, signKey string

	cmd := &cobra.Command{
		Use:   "update <uid> <exchange>",
		Short: "Rewrite the exchange and any supplied keys",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			exchange, err := model.ParseExchangeName(args[1])
			if err != nil {
				return err
			}
			var ak, sk *string
			if cmd.Flags().Changed("api-key") {
				ak = &apiKey
			}
			if cmd.Flags().Changed("sign-key") {
				sk = &signKey
			}

			return withRepo(cmd, func(ctx context.Context, repo *credential.Repository) error {
				id, err := repo.UpdateAccount(ctx, model.AccountID(args[0]), exchange, ak, sk)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "New api key")
	cmd.Flags().StringVar(&signKey, "sign-key", "", "New signing secret")
	return cmd
}

func accountRemoveKeyCmd(withRepo repoRunner) *cobra.Command {
	var exchangeFlag string

	cmd := &cobra.Command{
		Use:   "remove-key <uid>",
		Short: "Clear the api key, on every exchange unless --exchange is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID := model.AccountID(args[0])
			exchange, err := parseExchangeFlag(exchangeFlag)
			if err != nil {
				return err
			}

			return withRepo(cmd, func(ctx context.Context, repo *credential.Repository) error {
				var err error
				if exchange == nil {
					err = repo.RemoveKey(ctx, accountID)
				} else {
					err = repo.RemoveExchangeKey(ctx, accountID, *exchange)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed api key of %s\n", accountID)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&exchangeFlag, "exchange", "e", "", "Limit to one exchange")
	return cmd
}

func accountRemoveCmd(withRepo repoRunner) *cobra.Command {
	var exchangeFlag string

	cmd := &cobra.Command{
		Use:   "remove <uid>",
		Short: "Delete the account, on every exchange unless --exchange is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID := model.AccountID(args[0])
			exchange, err := parseExchangeFlag(exchangeFlag)
			if err != nil {
				return err
			}

			return withRepo(cmd, func(ctx context.Context, repo *credential.Repository) error {
				var err error
				if exchange == nil {
					err = repo.RemoveAccount(ctx, accountID)
				} else {
					err = repo.RemoveExchangeAccount(ctx, accountID, *exchange)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", accountID)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&exchangeFlag, "exchange", "e", "", "Limit to one exchange")
	return cmd
}

// parseExchangeFlag returns nil when the flag was left empty
func parseExchangeFlag(flag string) (*model.ExchangeName, error) {
	if flag == "" {
		return nil, nil
	}
	exchange, err := model.ParseExchangeName(flag)
	if err != nil {
		return nil, err
	}
	return &exchange, nil
}
