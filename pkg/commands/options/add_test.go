package options

import (
	"testing"

	"github.com/spf13/cobra"
)

func parse(t *testing.T, args ...string) (*cobra.Command, *AddOptions) {
	t.Helper()
	o := &AddOptions{}
	cmd := &cobra.Command{Use: "add"}
	AddAddArgs(cmd, o)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cmd, o
}

func TestCoordinates(t *testing.T) {
	cmd, o := parse(t, "--lat", "52.5", "--lon", "13.4")
	lat, lon, err := o.Coordinates(cmd)
	if err != nil {
		t.Fatalf("Coordinates: %v", err)
	}
	if lat == nil || lon == nil || *lat != 52.5 || *lon != 13.4 {
		t.Fatalf("unexpected coordinates %v %v", lat, lon)
	}

	cmd, o = parse(t)
	if lat, lon, err := o.Coordinates(cmd); err != nil || lat != nil || lon != nil {
		t.Fatalf("expected no coordinates, got %v %v %v", lat, lon, err)
	}

	cmd, o = parse(t, "--lat", "1")
	if _, _, err := o.Coordinates(cmd); err == nil {
		t.Fatalf("expected error for lone --lat")
	}

	cmd, o = parse(t, "--lat", "91", "--lon", "0")
	if _, _, err := o.Coordinates(cmd); err == nil {
		t.Fatalf("expected range error")
	}
}
