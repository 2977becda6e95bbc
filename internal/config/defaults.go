package config

// Default values
const (
	DefaultAPIURL         = "https://image.pollinations.ai/prompt/"
	DefaultModel          = "flux"
	DefaultTimeoutSec     = 30
	DefaultPollIntervalMS = 100
	DefaultHotkey         = "Ctrl+Shift+A"
)

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			URL:        DefaultAPIURL,
			Model:      DefaultModel,
			Enhance:    boolPtr(true),
			NoLogo:     boolPtr(true),
			TimeoutSec: DefaultTimeoutSec,
		},
		UI: UIConfig{
			PollIntervalMS: DefaultPollIntervalMS,
			Hotkey:         DefaultHotkey,
		},
		Logging: LoggingConfig{
			File: boolPtr(false),
		},
	}
}

func boolPtr(b bool) *bool { return &b }
