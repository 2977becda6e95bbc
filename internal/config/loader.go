package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ytget/ai-image-generator/internal/platform"
)

// Load discovers a config file in the working directory or the user config
// directory, loads the .env file, applies environment overrides and validates
// the result.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using dir for file discovery
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := discoverConfigPath(dir)
	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
		log.Printf("Config: loaded %s", path)
	}

	if envPath := resolveEnvPath(); envPath != "" {
		// Real environment variables win over .env values
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("Config: failed to load %s: %v", envPath, err)
		} else {
			log.Printf("Config: loaded %s", envPath)
		}
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath returns the first config file that exists, or "" for
// defaults-only mode
func discoverConfigPath(dir string) string {
	local := filepath.Join(dir, LocalConfigFile)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	user := filepath.Join(home, ".config", UserConfigDir, UserConfigFile)
	if _, err := os.Stat(user); err == nil {
		return user
	}

	return ""
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// resolveEnvPath prefers a .env next to the executable, then the file named
// by AI_IMAGE_GENERATOR_ENV
func resolveEnvPath() string {
	if execDir, err := platform.ExecutableDir(); err == nil {
		exeEnv := filepath.Join(execDir, ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv(EnvDotenvPath); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

// merge copies non-zero fields of override onto base
func merge(base *Config, override *Config) {
	if override.API.URL != "" {
		base.API.URL = override.API.URL
	}
	if override.API.Model != "" {
		base.API.Model = override.API.Model
	}
	if override.API.Enhance != nil {
		base.API.Enhance = override.API.Enhance
	}
	if override.API.NoLogo != nil {
		base.API.NoLogo = override.API.NoLogo
	}
	if override.API.TimeoutSec != 0 {
		base.API.TimeoutSec = override.API.TimeoutSec
	}
	if override.UI.PollIntervalMS != 0 {
		base.UI.PollIntervalMS = override.UI.PollIntervalMS
	}
	if override.UI.Hotkey != "" {
		base.UI.Hotkey = override.UI.Hotkey
	}
	if override.Logging.File != nil {
		base.Logging.File = override.Logging.File
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		cfg.API.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvModel)); v != "" {
		cfg.API.Model = v
	}
	if b, ok := envBool(EnvEnhance); ok {
		cfg.API.Enhance = boolPtr(b)
	}
	if b, ok := envBool(EnvNoLogo); ok {
		cfg.API.NoLogo = boolPtr(b)
	}
	if n, ok := envInt(EnvTimeoutSec); ok {
		cfg.API.TimeoutSec = n
	}
	if n, ok := envInt(EnvPollIntervalMS); ok {
		cfg.UI.PollIntervalMS = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvHotkey)); v != "" {
		cfg.UI.Hotkey = v
	}
	if b, ok := envBool(EnvFileLogging); ok {
		cfg.Logging.File = boolPtr(b)
	}
}

func envBool(key string) (bool, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Config: ignoring %s=%q: %v", key, v, err)
		return false, false
	}
	return b, true
}

func envInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Config: ignoring %s=%q: %v", key, v, err)
		return 0, false
	}
	return n, true
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.URL)
	if err != nil {
		return fmt.Errorf("api.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("api.url: missing host")
	}
	if strings.TrimSpace(cfg.API.Model) == "" {
		return fmt.Errorf("api.model must not be empty")
	}
	if cfg.API.TimeoutSec <= 0 {
		return fmt.Errorf("api.timeout_sec must be positive, got %d", cfg.API.TimeoutSec)
	}
	if cfg.UI.PollIntervalMS < 10 || cfg.UI.PollIntervalMS > 5000 {
		return fmt.Errorf("ui.poll_interval_ms must be between 10 and 5000, got %d", cfg.UI.PollIntervalMS)
	}
	return nil
}
