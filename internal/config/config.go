// Package config loads server configuration from an optional YAML file and
// COMMUNITY_-prefixed environment variables, with working defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr    string
	DataDir string
	Debug   bool

	PrimaryAdminEmail    string
	PrimaryAdminPassword string
	SignInDelay          time.Duration
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("data_dir", "data")
	v.SetDefault("debug", false)
	v.SetDefault("primary_admin_email", "owner@openletters.example")
	v.SetDefault("primary_admin_password", "change-me")
	v.SetDefault("sign_in_delay", time.Second)

	v.SetEnvPrefix("COMMUNITY")
	v.AutomaticEnv()

	v.SetConfigName("community")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Addr:                 v.GetString("addr"),
		DataDir:              v.GetString("data_dir"),
		Debug:                v.GetBool("debug"),
		PrimaryAdminEmail:    v.GetString("primary_admin_email"),
		PrimaryAdminPassword: v.GetString("primary_admin_password"),
		SignInDelay:          v.GetDuration("sign_in_delay"),
	}
	if cfg.PrimaryAdminEmail == "" || cfg.PrimaryAdminPassword == "" {
		return nil, errors.New("primary admin credentials must not be empty")
	}
	return cfg, nil
}
