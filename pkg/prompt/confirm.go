// Package prompt asks Yes/No questions on a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"tableflip.dev/clocker/pkg/datasource"
)

// Confirmer reads a Yes/No answer from In. It implements
// datasource.Confirmer and blocks until a line is read.
type Confirmer struct {
	In            io.Reader
	Out           io.Writer
	IsInteractive func() bool
	// AssumeYes answers every prompt affirmatively without reading.
	AssumeYes bool
}

var _ datasource.Confirmer = Confirmer{}

// DefaultConfirmer reads from stdin and writes to stdout.
func DefaultConfirmer() Confirmer {
	return Confirmer{
		In:  os.Stdin,
		Out: os.Stdout,
		IsInteractive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// Confirm prints p and returns ResponseYes only for an explicit "y"/"yes".
// Non-interactive input declines.
func (c Confirmer) Confirm(p datasource.Prompt) datasource.Response {
	if c.AssumeYes {
		return datasource.ResponseYes
	}
	if c.IsInteractive == nil || !c.IsInteractive() {
		return datasource.ResponseNo
	}
	if c.Out != nil {
		fmt.Fprintln(c.Out, p.Message)
		if p.InformativeText != "" {
			fmt.Fprintln(c.Out, p.InformativeText)
		}
		fmt.Fprintf(c.Out, "(%s): ", strings.Join(p.Buttons, "/"))
	}
	reader := bufio.NewReader(c.In)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return datasource.ResponseNo
	}
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return datasource.ResponseYes
	default:
		return datasource.ResponseNo
	}
}
