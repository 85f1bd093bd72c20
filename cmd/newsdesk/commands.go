package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/newsdesk-backend/internal/app"
	"github.com/heartmarshall/newsdesk-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "newsdesk",
		Short:         "Keyword-driven generated news service",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newRefreshCmd(),
		newConsolidateCmd(),
		newPromoteCmd(),
		newResetTokensCmd(),
	)
	return root
}

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the maintenance scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return app.Migrate(cmd.Context(), cfg, logger)
		},
	}
}

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-score every topic and regenerate stale ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) (any, error) {
				return a.Refresh.Run(ctx)
			})
		},
	}
}

func newConsolidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consolidate",
		Short: "Promote the winning candidates and start a new voting round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) (any, error) {
				return a.Voting.Consolidate(ctx)
			})
		},
	}
}

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <username>",
		Short: "Grant the admin role to an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) (any, error) {
				u, err := a.Users.Promote(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return map[string]string{"username": u.Username, "role": string(u.Role)}, nil
			})
		},
	}
}

func newResetTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-tokens",
		Short: "Restore every user's voting token budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) (any, error) {
				n, err := a.Users.ResetAll(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]int64{"users_reset": n}, nil
			})
		},
	}
}

func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

// withApp builds the application, runs fn and prints its result as JSON.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) (any, error)) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	a, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := fn(cmd.Context(), a)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
