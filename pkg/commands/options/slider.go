package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/clocker/pkg/timeutil"
)

// SliderOptions shifts displayed times like the panel's time slider.
type SliderOptions struct {
	In string
}

func AddSliderArgs(cmd *cobra.Command, o *SliderOptions) {
	cmd.Flags().StringVar(&o.In, "in", "",
		`Show times at an offset from now, example: --in=-1h30m or --in=90.`)
}

// Minutes parses the offset flag.
func (o *SliderOptions) Minutes() (int, error) {
	return timeutil.ParseOffset(o.In)
}
