package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/clocker/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(clocker completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(clocker completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// rowCompletions offers the current rows as "index<TAB>label" pairs.
func rowCompletions() []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	entries, err := p.List(context.Background())
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		out = append(out, fmt.Sprintf("%d\t%s", i, e.Label()))
	}
	return out
}

func completeRow(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return rowCompletions(), cobra.ShellCompDirectiveNoFileComp
}
