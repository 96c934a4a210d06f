package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"portfolio-site/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	direction := "up"
	if len(args) == 1 {
		direction = args[0]
	}

	cfg, err := config.LoadConfig(config.RequireDatabase)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	newLogger(cfg.LogLevel)

	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if direction == "down" {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		cmd.Println("No migrations to apply.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	cmd.Printf("Migrations applied (%s).\n", direction)
	return nil
}
