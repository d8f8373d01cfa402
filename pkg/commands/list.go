package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/clocker/pkg/commands/options"
	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/runner/list"
	"tableflip.dev/clocker/pkg/store"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	so := &options.SliderOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the panel timezones",
		Example: `
clocker list
clocker list --in 1h30m
clocker list --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := so.Minutes()
			if err != nil {
				return oo.HandleError(err)
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				ShowID:      io.ShowID,
				JSON:        oo.JSON,
				Offset:      offset,
				Preferences: preferences.New(cfg.Viper()),
				Persistence: p,
			}
			err = l.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddSliderArgs(cmd, so)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
