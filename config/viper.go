package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyDefaultCategory = "settings.default_category"
	keyTwentyFourHour  = "display.24hr_clock"
	keyDarkTheme       = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A missing config file is written out with the defaults.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		v.SetDefault(keyDefaultCategory, "")
		v.SetDefault(keyTwentyFourHour, true)
		v.SetDefault(keyDarkTheme, true)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return v.Unmarshal(c)
	}
}
