package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "yaml"
	envPrefix  = "PRACTIQ"
)

// GlobalConf is set once by MustReadConfig at process start.
var GlobalConf *Config

// ReadConfig loads the yaml config from configPath and overlays
// environment variables with the PRACTIQ_ prefix.
func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return conf, nil
}

// MustReadConfig panics if the config cannot be loaded. Meant for
// process start, where running without config is not an option.
func MustReadConfig(configPath string) *Config {
	conf, err := ReadConfig(configPath)
	if err != nil {
		panic(err)
	}

	GlobalConf = conf

	return conf
}
