package main

import (
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadAppConfig()
			if err != nil {
				return err
			}

			log, err := setupAppLogger(cfg)
			if err != nil {
				return err
			}
			logConfigSummary(cfg, log)

			db, err := setupAppDatabase(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			app, err := newApplication(cfg, log, db)
			if err != nil {
				_ = db.Close()
				return err
			}

			return app.Run(cmd.Context())
		},
	}
}
