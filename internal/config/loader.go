// Package config resolves run-level settings for metaprompt.
//
// Precedence, highest first:
// Layer 1: explicitly set command-line flags
// Layer 2: environment variables (METAPROMPT_PROFILE, METAPROMPT_FORMAT, METAPROMPT_VERBOSE)
// Layer 3: flag defaults
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "METAPROMPT"

// keys are the settings bound to flags of the same name.
var keys = []string{"profile", "format", "verbose"}

// New returns a viper instance bound to the given flag set and to the
// environment. Flags that are absent from fs are simply not bound.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for _, key := range keys {
		flag := fs.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return v, nil
}

// Load reads the current settings out of v.
func Load(v *viper.Viper) (*Config, error) {
	settings := make(map[string]any, len(keys))
	for _, key := range keys {
		settings[key] = v.Get(key)
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Profile = strings.TrimSpace(cfg.Profile)
	cfg.Format = strings.TrimSpace(cfg.Format)
	return cfg, nil
}
