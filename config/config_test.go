package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harlequix/hamming/channel"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	config, err := Get()
	require.Nil(t, err)
	require.Equal(t, "warn", config.LogLevel)
	require.Equal(t, 0.1, config.ErasureProbability)
	require.Equal(t, 2*time.Second, config.HandshakeTimeout)
	require.Equal(t, []string{"hamming"}, config.Protocols)
}

func TestSetConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "hamming.yaml")
	content := "ErasureProbability: 0.25\nSeed: 99\nWorkers: 4\n"
	require.Nil(t, ioutil.WriteFile(path, []byte(content), 0644))
	require.Nil(t, SetConfig(path))
	defer dropConfigFile(t)

	config, err := Get()
	require.Nil(t, err)
	require.Equal(t, 0.25, config.ErasureProbability)
	require.Equal(t, int64(99), config.Seed)
	require.Equal(t, 4, config.Workers)

	require.NotNil(t, SetConfig(filepath.Join(dir, "missing.yaml")))
	require.Nil(t, SetConfig(""))
}

// dropConfigFile empties the values read from a config file and keeps the
// defaults registered in init.
func dropConfigFile(t *testing.T) {
	require.Nil(t, viper.ReadConfig(bytes.NewReader(nil)))
}

func TestDefaultsAfterConfigFile(t *testing.T) {
	config, err := Get()
	require.Nil(t, err)
	require.Equal(t, 0.1, config.ErasureProbability)
	require.Equal(t, int64(0), config.Seed)
	require.Equal(t, 1, config.Workers)
	require.Equal(t, "hamming", config.Secret)
}

func TestDerive(t *testing.T) {
	config := &Config{ErasureProbability: 0.3, FlipProbability: 0.01, Seed: 5, Workers: 2}
	var ch channel.Config
	require.Nil(t, Derive(&ch, config))
	require.Equal(t, channel.Config{ErasureProbability: 0.3, FlipProbability: 0.01, Seed: 5}, ch)
}
