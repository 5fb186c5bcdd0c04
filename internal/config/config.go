// Package config loads the command line settings using Viper
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/raykavin/tafx/pkg/core"
)

const (
	EnvPrefix          = "TAFX"
	DefaultStoragePath = "./tafx.db"
	DefaultTimeLayout  = "2006-01-02 15:04:05"
)

// New returns a Viper instance with defaults set and TAFX_* environment
// variables bound. Nested keys map to variables with dots replaced by
// underscores, so storage.driver reads TAFX_STORAGE_DRIVER.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.layout", DefaultTimeLayout)
	v.SetDefault("log.colored", true)
	v.SetDefault("log.json", false)
	v.SetDefault("storage.driver", "buntdb")
	v.SetDefault("storage.path", DefaultStoragePath)
	v.SetDefault("feed.timeframe", "")
	v.SetDefault("feed.heikin_ashi", false)
	v.SetDefault("binance.api_key", "")
	v.SetDefault("binance.secret_key", "")

	return v
}

// Load reads settings from the environment and, when path is not empty,
// from a config file. A missing default file is not an error.
func Load(v *viper.Viper, path string) (*core.Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("tafx")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("could not read config file: %w", err)
			}
		}
	}

	return &core.Settings{
		Log: core.LogSettings{
			Level:   v.GetString("log.level"),
			Layout:  v.GetString("log.layout"),
			Colored: v.GetBool("log.colored"),
			JSON:    v.GetBool("log.json"),
		},
		Storage: core.StorageSettings{
			Driver: v.GetString("storage.driver"),
			Path:   v.GetString("storage.path"),
		},
		Feed: core.FeedSettings{
			Timeframe:  v.GetString("feed.timeframe"),
			HeikinAshi: v.GetBool("feed.heikin_ashi"),
		},
		Binance: core.BinanceSettings{
			APIKey:    v.GetString("binance.api_key"),
			SecretKey: v.GetString("binance.secret_key"),
		},
	}, nil
}
