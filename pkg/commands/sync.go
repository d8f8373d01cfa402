package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/clocker/pkg/runner/home"
	"tableflip.dev/clocker/pkg/store"
)

func addSync(topLevel *cobra.Command) {
	zone := ""

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Point the home row at the system timezone",
		Example: `
clocker sync
clocker sync --zone Europe/Lisbon
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := home.Sync{Zone: zone, Persistence: p}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&zone, "zone", "",
		"Use this IANA zone instead of the detected system timezone.")
	topLevel.AddCommand(cmd)
}
