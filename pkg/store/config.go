// Package store owns everything local to this machine: the tool's
// configuration and the snapshot cache of the last successful fetch. The
// remote API remains the sole source of truth; snapshots only exist so
// `--offline` can render something.
package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings every command needs.
type Config struct {
	// APIURL is the base URL of the remote backend, including /api.
	APIURL string
	// Token is the bearer token attached to every request. Obtaining it is
	// out of scope here; paste one from the web app or ops tooling.
	Token string
	// CachePath is where fetch snapshots are kept.
	CachePath string
	// View is the default calendar view, "month" or "week".
	View string
}

// LoadConfig reads .iberfoods.yaml (home directory, then cwd) and the
// IBERFOODS_* environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".iberfoods")
	v.SetEnvPrefix("IBERFOODS")
	v.AutomaticEnv()

	v.SetDefault("cache", "~/.iberfoods.cache")
	v.SetDefault("view", "month")

	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	if override := os.Getenv("IBERFOODS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cache, err := homedir.Expand(v.GetString("cache"))
	if err != nil {
		return nil, fmt.Errorf("store: expand cache path: %w", err)
	}

	return &Config{
		APIURL:    v.GetString("api_url"),
		Token:     v.GetString("api_token"),
		CachePath: cache,
		View:      v.GetString("view"),
	}, nil
}
