package store

import (
	"errors"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config keys shared with the preferences package.
const (
	KeyPath         = "path"
	KeyLogDir       = "log_dir"
	KeyFontSize     = "font_size"
	KeyRelativeDate = "relative_date"
	KeyShowSunrise  = "show_sunrise"
	KeyForeground   = "foreground"
	KeyTimeFormat   = "time_format"
)

// Config exposes the resolved settings for the store and the UI.
type Config interface {
	BasePath() string
	LogDir() string
	Viper() *viper.Viper
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPath, "~/.clocker.db")
	v.SetDefault(KeyLogDir, "~/.clocker/logs")
	v.SetDefault(KeyFontSize, 1)
	v.SetDefault(KeyRelativeDate, 0)
	v.SetDefault(KeyShowSunrise, true)
	v.SetDefault(KeyForeground, false)
	v.SetDefault(KeyTimeFormat, "24h")
}

// LoadConfig reads a .clocker config file from $CLOCKER_CONFIG_PATH or the
// working directory, overlaid with CLOCKER_* environment variables. A
// missing file is not an error.
func LoadConfig() (Config, error) {
	v := viper.GetViper()
	SetDefaults(v)
	v.SetConfigName(".clocker") // .yaml is implicit
	v.SetEnvPrefix("CLOCKER")
	v.AutomaticEnv()

	if override := v.GetString("config_path"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return NewConfig(v), nil
}

// NewConfig wraps an already populated viper instance.
func NewConfig(v *viper.Viper) Config {
	return &fileConfig{v: v}
}

type fileConfig struct {
	v *viper.Viper
}

func (f *fileConfig) BasePath() string {
	return expand(f.v.GetString(KeyPath))
}

func (f *fileConfig) LogDir() string {
	return expand(f.v.GetString(KeyLogDir))
}

func (f *fileConfig) Viper() *viper.Viper {
	return f.v
}

func expand(p string) string {
	if out, err := homedir.Expand(p); err == nil {
		return out
	}
	return p
}
