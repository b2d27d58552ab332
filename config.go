package main

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigFileName = "keybench.toml"
	envPrefix             = "keybench"
)

// initConfig reads the config file if it exists. Keys may be overridden by
// KEYBENCH_ prefixed environment variables, e.g. KEYBENCH_LOG_LEVEL.
func initConfig(fileName string) error {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "plain")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigFile(fileName)
	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
		return nil
	}
	return err
}

func configGetString(key string) string { return viper.GetString(key) }

func configGetLogLevel() string {
	return configGetString("log.level")
}

func configGetLogFormat() string {
	return configGetString("log.format")
}
