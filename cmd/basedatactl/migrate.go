package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/petcare-basedata/internal/adapter/postgres"
	"github.com/heartmarshall/petcare-basedata/internal/app"
	"github.com/heartmarshall/petcare-basedata/internal/config"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrate needs the %s driver (configured: %s)", config.DriverPostgres, cfg.Database.Driver)
			}

			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			// Info level so each applied migration is reported.
			logCfg := cfg.Log
			logCfg.Level = "info"
			if err := postgres.Migrate(cmd.Context(), pool, app.NewLogger(logCfg)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations up to date")
			return nil
		},
	}
}
