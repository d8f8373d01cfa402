package prompt

import (
	"bytes"
	"strings"
	"testing"

	"tableflip.dev/clocker/pkg/datasource"
)

func TestConfirmNonInteractiveDeclines(t *testing.T) {
	c := Confirmer{
		In:            bytes.NewBufferString("y\n"),
		IsInteractive: func() bool { return false },
	}
	if got := c.Confirm(datasource.HomeRowPrompt); got != datasource.ResponseNo {
		t.Fatalf("expected ResponseNo, got %v", got)
	}
}

func TestConfirmAssumeYes(t *testing.T) {
	c := Confirmer{AssumeYes: true}
	if got := c.Confirm(datasource.HomeRowPrompt); got != datasource.ResponseYes {
		t.Fatalf("expected ResponseYes, got %v", got)
	}
}

func TestConfirmInteractive(t *testing.T) {
	tests := map[string]datasource.Response{
		"y\n":     datasource.ResponseYes,
		"YES\n":   datasource.ResponseYes,
		"n\n":     datasource.ResponseNo,
		"maybe\n": datasource.ResponseNo,
		"":        datasource.ResponseNo,
	}
	for input, want := range tests {
		var out bytes.Buffer
		c := Confirmer{
			In:            bytes.NewBufferString(input),
			Out:           &out,
			IsInteractive: func() bool { return true },
		}
		if got := c.Confirm(datasource.HomeRowPrompt); got != want {
			t.Fatalf("input %q: got %v, want %v", input, got, want)
		}
		if !strings.Contains(out.String(), "(Yes/No)") {
			t.Fatalf("prompt missing buttons: %q", out.String())
		}
	}
}
