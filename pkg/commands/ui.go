package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/clocker/pkg/runner/ui"
	"tableflip.dev/clocker/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the timezone panel",
		Example: `
clocker ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg, Persistence: p}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
