package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the cfs tooling.
type Config struct {
	Library LibraryConfig
	Log     LogConfig
}

// LibraryConfig locates the vendor CFS library.
type LibraryConfig struct {
	// Path of the shared library. Empty means the platform default
	// names via the system search path.
	Path string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and an optional
// .env file in the working directory. Environment variables override
// file values.
func Load() (*Config, error) {
	viper.SetDefault("CFS_LIBRARY", "")
	viper.SetDefault("CFS_LOG_LEVEL", "warn")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Ignore error - file may not exist
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.BindEnv("CFS_LIBRARY")
	viper.BindEnv("CFS_LOG_LEVEL")

	var config Config
	config.Library.Path = viper.GetString("CFS_LIBRARY")
	config.Log.Level = viper.GetString("CFS_LOG_LEVEL")

	return &config, nil
}
