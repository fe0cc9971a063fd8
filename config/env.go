package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Environment keys read by LoadEnvironment
const (
	EnvToken    = "HOMEY_BETTERSTACK_TOKEN"
	EnvEndpoint = "HOMEY_BETTERSTACK_ENDPOINT"
)

// Environment is the construction-time input a host hands to the logger
type Environment struct {
	// Token enables remote ingestion. Empty means remote logging is off.
	Token string
	// Endpoint overrides the default ingestion URL
	Endpoint string
	// Overrides holds the recognized sink settings that were set
	Overrides map[string]any
}

// LoadEnvironment reads the env file at path and the process environment,
// the latter taking precedence. A missing file is not an error; an empty
// path reads the process environment only.
func LoadEnvironment(path string) (Environment, error) {
	v := viper.New()
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Environment{}, fmt.Errorf("read env file %s: %w", path, err)
		}
	}

	env := Environment{
		Token:     v.GetString(EnvToken),
		Endpoint:  v.GetString(EnvEndpoint),
		Overrides: make(map[string]any),
	}
	for _, key := range []string{KeyConsoleEnabled, KeyPublishEnabled, KeyConsoleLevel, KeyPublishLevel} {
		if v.IsSet(key) {
			env.Overrides[key] = v.Get(key)
		}
	}
	return env, nil
}
