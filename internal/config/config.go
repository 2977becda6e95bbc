// Package config holds the application configuration: the layered runtime
// Config (defaults, YAML file, .env, environment) and the user's persisted
// Settings.
package config

import "time"

// Environment variable names
const (
	EnvAPIURL         = "IMAGE_API_URL"
	EnvModel          = "IMAGE_MODEL"
	EnvEnhance        = "IMAGE_ENHANCE"
	EnvNoLogo         = "IMAGE_NOLOGO"
	EnvTimeoutSec     = "REQUEST_TIMEOUT_SEC"
	EnvPollIntervalMS = "POLL_INTERVAL_MS"
	EnvHotkey         = "HOTKEY"
	EnvFileLogging    = "ENABLE_FILE_LOGGING"

	// EnvDotenvPath points at a .env file used when none sits next to the binary
	EnvDotenvPath = "AI_IMAGE_GENERATOR_ENV"
)

// Config file discovery
const (
	LocalConfigFile = "ai-image-generator.yaml"
	UserConfigDir   = "ai-image-generator"
	UserConfigFile  = "config.yaml"
)

// Config is the runtime configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the image endpoint
type APIConfig struct {
	URL        string `yaml:"url"`
	Model      string `yaml:"model"`
	Enhance    *bool  `yaml:"enhance"`
	NoLogo     *bool  `yaml:"nologo"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// UIConfig configures the interactive side
type UIConfig struct {
	PollIntervalMS int    `yaml:"poll_interval_ms"`
	Hotkey         string `yaml:"hotkey"`
}

// LoggingConfig configures diagnostics output
type LoggingConfig struct {
	File *bool `yaml:"file"`
}

// Timeout returns the request timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSec) * time.Second
}

// PollInterval returns the poll loop period as a duration
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.UI.PollIntervalMS) * time.Millisecond
}

// EnhanceEnabled reports the effective enhance flag
func (c *Config) EnhanceEnabled() bool {
	return c.API.Enhance == nil || *c.API.Enhance
}

// NoLogoEnabled reports the effective nologo flag
func (c *Config) NoLogoEnabled() bool {
	return c.API.NoLogo == nil || *c.API.NoLogo
}

// FileLoggingEnabled reports whether logs go to the rotating file
func (c *Config) FileLoggingEnabled() bool {
	return c.Logging.File != nil && *c.Logging.File
}
