package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"VERSION"`

	CacheExpiration time.Duration `mapstructure:"CACHE_EXPIRATION"`
	CacheCleanup    time.Duration `mapstructure:"CACHE_CLEANUP"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	// RandomSeed seeds post sampling. Zero seeds from the clock.
	RandomSeed uint64 `mapstructure:"RANDOM_SEED"`
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "4000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("VERSION", "1.0.0")
	v.SetDefault("CACHE_EXPIRATION", 5*time.Minute)
	v.SetDefault("CACHE_CLEANUP", 10*time.Minute)
	v.SetDefault("RATE_LIMIT_RPS", 2.0)
	v.SetDefault("RATE_LIMIT_BURST", 4)
	v.SetDefault("RANDOM_SEED", 0)

	v.SetConfigFile(path)
	v.SetConfigType("env")

	// A missing file leaves the defaults in place.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
