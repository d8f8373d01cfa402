package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/clocker/pkg/runner/note"
	"tableflip.dev/clocker/pkg/store"
)

func addNote(topLevel *cobra.Command) {
	var (
		row  int
		text string
	)

	cmd := &cobra.Command{
		Use:   "note <row> [text]",
		Short: "Set or clear the note on a row",
		Example: `
clocker note 1 standup at 9
clocker note 1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a row")
			}
			var err error
			row, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row %q: %w", args[0], err)
			}
			text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			n := note.Note{Row: row, Text: text, Persistence: p}
			err = n.Do(context.Background())
			return oo.HandleError(err)
		},
		ValidArgsFunction: completeRow,
	}

	topLevel.AddCommand(cmd)
}
