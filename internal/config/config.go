package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/idilsaglam/todolist/internal/ids"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Config holds application configuration.
type Config struct {
	IDs   IDConfig    `mapstructure:"ids"`
	Input InputConfig `mapstructure:"input"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
}

// IDConfig picks the entry id generator.
type IDConfig struct {
	Scheme string `mapstructure:"scheme"`
}

// InputConfig holds submit rules.
type InputConfig struct {
	RejectBlank bool `mapstructure:"reject_blank"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LogConfig holds slog settings. An empty File means the front end decides.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// EnvPrefix is the prefix of env overrides, e.g. TODOLIST_UI_THEME.
const EnvPrefix = "TODOLIST"

// New returns a viper instance with defaults and env bindings set. Callers
// may bind flags to it before Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("ids.scheme", ids.SchemeTimestamp)
	v.SetDefault("input.reject_blank", false)
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and env into a Config. path wins over
// $TODOLIST_CONFIG; without either, config.toml under the user config dir is
// read when present. An explicit path that does not exist is an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "todolist"))
		}
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
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

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := ids.ByScheme(c.IDs.Scheme); err != nil {
		return fmt.Errorf("ids.scheme: %w", err)
	}
	if !validTheme(c.UI.Theme) {
		return fmt.Errorf("ui.theme: unknown theme %q (want %s)", c.UI.Theme, strings.Join(ui.Themes, ", "))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

func validTheme(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return true
	}
	for _, t := range ui.Themes {
		if t == name {
			return true
		}
	}
	return false
}
