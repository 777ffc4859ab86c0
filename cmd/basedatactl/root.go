package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/petcare-basedata/internal/app"
	"github.com/heartmarshall/petcare-basedata/internal/config"
)

type configLoader func() (*config.Config, error)

// cli holds what every subcommand shares. Config and services are loaded on
// first use so that commands like version need neither.
type cli struct {
	load   configLoader
	format string
	cfg    *config.Config
}

func newRootCmd(load configLoader) *cobra.Command {
	c := &cli{load: load}

	root := &cobra.Command{
		Use:           "basedatactl",
		Short:         "Inspect and repair base-data history",
		Long:          "basedatactl works directly against the configured store (CONFIG_PATH or ./config.yaml).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&c.format, "format", formatTable, "Output format: table or json")

	root.AddCommand(
		newVersionsCmd(c),
		newLogsCmd(c),
		newRollbackCmd(c),
		newDictCmd(c),
		newMigrateCmd(c),
		newTokenCmd(c),
		newVersionCmd(),
	)
	return root
}

func (c *cli) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := c.load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg
	return cfg, nil
}

// services opens the configured store. Callers must call Close.
func (c *cli) services(ctx context.Context) (*app.Services, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	return app.OpenServices(ctx, cfg, c.logger(cfg))
}

// logger writes warnings only, so command output stays readable.
func (c *cli) logger(cfg *config.Config) *slog.Logger {
	lc := cfg.Log
	if lc.Level == "" || lc.Level == "info" || lc.Level == "debug" {
		lc.Level = "warn"
	}
	return app.NewLogger(lc)
}

func (c *cli) printer(cmd *cobra.Command) (*printer, error) {
	return newPrinter(cmd.OutOrStdout(), c.format)
}
