package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"portfolio-site/internal/config"
	"portfolio-site/internal/database"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise GitHub repositories once",
	Long: `Fetches the configured account's repositories and reconciles them into projects.
The result is printed as JSON; a failed fetch exits non-zero.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(config.RequireSync)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg.LogLevel)

	pool, err := database.Connect(ctx, cfg.DBURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	appSyncer, err := newSyncer(cfg, database.NewStore(pool), logger)
	if err != nil {
		return fmt.Errorf("failed to create syncer: %w", err)
	}

	result := appSyncer.Sync(ctx)
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if result.Error != "" {
		return errors.New(result.Error)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d repositories failed to sync", len(result.Failed))
	}
	return nil
}
