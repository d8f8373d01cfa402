package options

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// AddOptions
type AddOptions struct {
	Label     string
	Address   string
	Note      string
	City      bool
	Latitude  float64
	Longitude float64
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.Label, "label", "",
		"Custom label shown instead of the zone name.")
	cmd.Flags().StringVar(&o.Address, "address", "",
		"Formatted place name, used when no label is set.")
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Note shown under the row.")
	cmd.Flags().BoolVar(&o.City, "city", false,
		"Mark the entry as a city rather than a bare timezone.")
	cmd.Flags().Float64Var(&o.Latitude, "lat", 0,
		"Latitude, for sunrise and sunset.")
	cmd.Flags().Float64Var(&o.Longitude, "lon", 0,
		"Longitude, for sunrise and sunset.")
}

// Coordinates returns the latitude and longitude when both flags were set,
// or nils when neither was.
func (o *AddOptions) Coordinates(cmd *cobra.Command) (*float64, *float64, error) {
	lat, lon := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
	switch {
	case !lat && !lon:
		return nil, nil, nil
	case lat != lon:
		return nil, nil, errors.New("--lat and --lon must be set together")
	}
	if o.Latitude < -90 || o.Latitude > 90 {
		return nil, nil, fmt.Errorf("latitude %v out of range", o.Latitude)
	}
	if o.Longitude < -180 || o.Longitude > 180 {
		return nil, nil, fmt.Errorf("longitude %v out of range", o.Longitude)
	}
	la, lo := o.Latitude, o.Longitude
	return &la, &lo, nil
}
