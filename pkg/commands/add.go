package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/clocker/pkg/commands/options"
	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/runner/add"
	"tableflip.dev/clocker/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <timezone>",
		Short: "Add a timezone to the panel",
		Example: `
clocker add Asia/Tokyo
clocker add Europe/Berlin --city --label Berlin --lat 52.52 --lon 13.40
clocker add America/New_York --note "standup at 9"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one timezone")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, lon, err := ao.Coordinates(cmd)
			if err != nil {
				return err
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			a := add.Add{
				TimezoneID:  args[0],
				Label:       ao.Label,
				Address:     ao.Address,
				Note:        ao.Note,
				City:        ao.City,
				Latitude:    lat,
				Longitude:   lon,
				Preferences: preferences.New(cfg.Viper()),
				Persistence: p,
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddAddArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}
