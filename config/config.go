package config

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel           string
	TraceFile          string
	Profile            string
	ErasureProbability float64
	FlipProbability    float64
	Seed               int64
	Workers            int
	Address            string
	Secret             string
	HandshakeTimeout   time.Duration
	IdleTimeout        time.Duration
	Protocols          []string
}

func init() {
	viper.SetDefault("LogLevel", "warn")
	viper.SetDefault("TraceFile", "")
	viper.SetDefault("Profile", "")
	viper.SetDefault("ErasureProbability", 0.1)
	viper.SetDefault("FlipProbability", 0.0)
	viper.SetDefault("Seed", 0)
	viper.SetDefault("Workers", 1)
	viper.SetDefault("Address", "127.0.0.1:4433")
	viper.SetDefault("Secret", "hamming")
	viper.SetDefault("HandshakeTimeout", "2s")
	viper.SetDefault("IdleTimeout", "60s")
	viper.SetDefault("Protocols", []string{"hamming"})
}

// SetConfig reads an optional config file on top of the defaults.
func SetConfig(configFile string) error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", configFile)
	}
	return nil
}

func Get() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &config, nil
}

// Derive copies the fields dst shares with config by name.
func Derive(dst interface{}, config *Config) error {
	if err := copier.Copy(dst, config); err != nil {
		return errors.Wrap(err, "deriving config")
	}
	return nil
}
