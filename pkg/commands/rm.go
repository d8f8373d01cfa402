package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/clocker/pkg/commands/options"
	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/prompt"
	"tableflip.dev/clocker/pkg/runner/rm"
	"tableflip.dev/clocker/pkg/store"
)

func addRm(topLevel *cobra.Command) {
	ro := &options.RowOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <row>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a timezone from the panel",
		Long:    `Remove the timezone at the given row, as shown by "clocker list".

Removing the home row asks for confirmation first, since it tracks the
system timezone.`,
		Example: `
clocker rm 2
clocker rm 0 --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a row")
			}
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row %q: %w", args[0], err)
			}
			ro.Row = row
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			c := prompt.DefaultConfirmer()
			c.AssumeYes = co.Yes
			r := rm.Rm{
				Row:         ro.Row,
				Confirmer:   c,
				Preferences: preferences.New(cfg.Viper()),
				Persistence: p,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
		ValidArgsFunction: completeRow,
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
