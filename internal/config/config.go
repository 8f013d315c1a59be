package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds editor settings.
type Config struct {
	Window  WindowConfig
	UI      UIConfig
	Catalog CatalogConfig
	Scene   SceneConfig
}

type WindowConfig struct {
	Width  int
	Height int
	Title  string
	FPS    int
}

// UIConfig sizes the editor chrome around the viewport.
type UIConfig struct {
	TabBarHeight  int `mapstructure:"tab_bar_height"`
	LeftPaneWidth int `mapstructure:"left_pane_width"`
}

type CatalogConfig struct {
	Path  string
	Watch bool
}

type SceneConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix LEVELEDIT_.
// LEVELEDIT_CONFIG points at an explicit config file; otherwise leveledit.{toml,yaml,json}
// is looked up in the working directory.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Level Editor")
	v.SetDefault("window.fps", 60)
	v.SetDefault("ui.tab_bar_height", 32)
	v.SetDefault("ui.left_pane_width", 300)
	v.SetDefault("catalog.path", "assets/objects.yaml")
	v.SetDefault("catalog.watch", true)
	v.SetDefault("scene.path", "assets/scenes/main.json")

	cfgPath := os.Getenv("LEVELEDIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("leveledit")
	}

	v.SetEnvPrefix("LEVELEDIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; a missing explicit one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.UI.TabBarHeight < 0 || c.UI.TabBarHeight >= c.Window.Height {
		return fmt.Errorf("ui.tab_bar_height %d does not fit a %d pixel window", c.UI.TabBarHeight, c.Window.Height)
	}
	if c.UI.LeftPaneWidth <= 60 || c.UI.LeftPaneWidth >= c.Window.Width {
		return fmt.Errorf("ui.left_pane_width %d does not fit a %d pixel window", c.UI.LeftPaneWidth, c.Window.Width)
	}
	return nil
}
