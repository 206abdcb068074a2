package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	IDs IDConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string // classic | neon | mono
	Group bool   // group list output by pending/done
	Color string // auto | always | never
}

// IDConfig picks where item identifiers come from.
type IDConfig struct {
	Source string // uuid | counter
}

type LogConfig struct {
	Level string
}

// Load reads configuration from defaults, an optional TOML file and env.
// path wins over TADA_CONFIG; with neither, $XDG_CONFIG_HOME/tada/config.toml
// is read if it exists. Env var overrides use prefix TADA_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.group", false)
	v.SetDefault("ui.color", "auto")
	v.SetDefault("ids.source", "uuid")
	v.SetDefault("log.level", "warn")

	v.SetConfigType("toml")

	explicit := path
	if explicit == "" {
		explicit = os.Getenv("TADA_CONFIG")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tada"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TADA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicitly named file must exist; the default location is optional
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch strings.ToLower(c.UI.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("ui.color: want auto, always or never, got %q", c.UI.Color)
	}
	switch c.IDs.Source {
	case "uuid", "counter":
	default:
		return fmt.Errorf("ids.source: want uuid or counter, got %q", c.IDs.Source)
	}
	return nil
}
