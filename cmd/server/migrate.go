package main

import (
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// migrateCommands are the goose commands exposed by "migrate".
var migrateCommands = []struct {
	name  string
	short string
}{
	{"up", "Apply all pending migrations"},
	{"down", "Roll back the most recent migration"},
	{"status", "Show the status of every migration"},
	{"version", "Print the current schema version"},
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
	}

	for _, mc := range migrateCommands {
		name := mc.name
		cmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: mc.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigration(cmd, name)
			},
		})
	}
	return cmd
}

func runMigration(cmd *cobra.Command, command string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database connection", "error", err)
		}
	}()

	log.Info("Executing migrations", "command", command)
	return postgres.Migrate(cmd.Context(), db, log, command)
}
