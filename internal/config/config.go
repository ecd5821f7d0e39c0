package config

// Config holds the run-level settings that may come from flags or the
// environment. Prompt content configuration lives in internal/profile.
type Config struct {
	// Profile is the built-in profile to start from.
	Profile string `mapstructure:"profile"`

	// Format selects the render mode: messages or prompt.
	Format string `mapstructure:"format"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}
