package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuannm99/novaframe/internal"
)

type options struct {
	configPath string
	cfg        *internal.NovaFrameConfig
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "novaframe",
		Short: "Row and column storage for fixed-schema records",
		Long: `novaframe demonstrates frames: records pushed row by row and stored
column by column.

Examples:
  novaframe planets
  novaframe --config novaframe.yaml planets`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := internal.Defaults()
			if opts.configPath != "" {
				var err error
				if cfg, err = internal.LoadConfig(opts.configPath); err != nil {
					return err
				}
			}
			lvl, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
			slog.SetDefault(slog.New(handler))
			opts.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML config file")
	root.AddCommand(newPlanetsCmd(opts), newWidthCmd())
	return root
}
