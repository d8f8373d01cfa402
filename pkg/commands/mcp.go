package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/clocker/pkg/logging"
	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/runner/mcp"
	"tableflip.dev/clocker/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the panel over the Model Context Protocol on stdio",
		Example: `
clocker mcp
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			// stdout carries the protocol, so logs go to the log file only.
			if err := logging.Init(cfg.LogDir()); err != nil {
				return err
			}
			defer logging.Close()

			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			return mcp.Run(context.Background(), p, preferences.New(cfg.Viper()))
		},
	}

	topLevel.AddCommand(cmd)
}
