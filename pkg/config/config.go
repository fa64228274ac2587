// Package config resolves the Memos API connection settings. Values are read
// from the process environment first, then from an optional .env file and
// finally from an optional YAML settings file. The resolved Config is
// immutable; Loader memoizes it for the lifetime of the process.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names for the two required settings.
const (
	EnvAPIURL = "MEMOS_API_URL"
	EnvToken  = "MEMOS_TOKEN" //nolint:gosec // variable name, not a credential
)

// Config holds the settings needed to talk to the Memos API.
type Config struct {
	APIURL string // Base URL without a trailing slash.
	Token  string // Bearer token.
}

// Options controls where Load looks for settings.
type Options struct {
	// LookupEnv reads a process environment variable. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
	// EnvFile is a dotenv file consulted for keys missing from the environment.
	// A missing file is ignored.
	EnvFile string
	// SettingsFile is a YAML file consulted last. A missing file is ignored.
	SettingsFile string
}

// settingsFile is the YAML layout of the optional settings file.
type settingsFile struct {
	APIURL string `yaml:"api_url"`
	Token  string `yaml:"token"` //nolint:gosec // configuration field, not a hardcoded secret
}

// Load resolves MEMOS_API_URL and MEMOS_TOKEN. It fails when either value is
// absent or empty in every source. One trailing slash is removed from the URL.
func Load(opts Options) (Config, error) {
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	dotenv, err := readDotEnv(opts.EnvFile)
	if err != nil {
		return Config{}, err
	}

	settings, err := readSettings(opts.SettingsFile)
	if err != nil {
		return Config{}, err
	}

	resolve := func(key, fromSettings string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		if v := dotenv[key]; v != "" {
			return v
		}
		return fromSettings
	}

	apiURL := resolve(EnvAPIURL, settings.APIURL)
	if apiURL == "" {
		return Config{}, missingError(EnvAPIURL)
	}

	token := resolve(EnvToken, settings.Token)
	if token == "" {
		return Config{}, missingError(EnvToken)
	}

	return Config{
		APIURL: strings.TrimSuffix(apiURL, "/"),
		Token:  token,
	}, nil
}

func missingError(key string) error {
	return fmt.Errorf("%s is required. Set it as an environment variable or in .env", key)
}

// readDotEnv parses a dotenv file without touching the process environment.
func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return values, nil
}

// readSettings parses the YAML settings file. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing.
func readSettings(path string) (settingsFile, error) {
	if path == "" {
		return settingsFile{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if errors.Is(err, os.ErrNotExist) {
		return settingsFile{}, nil
	}
	if err != nil {
		return settingsFile{}, fmt.Errorf("config: load settings: %w", err)
	}

	var s settingsFile
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &s); err != nil {
		return settingsFile{}, fmt.Errorf("config: parse settings: %w", err)
	}

	return s, nil
}

// Loader loads the Config on first use and caches it. A failed load is not
// cached, so a later call retries the sources.
type Loader struct {
	opts Options

	mu  sync.Mutex
	cfg *Config
}

// NewLoader creates a Loader that calls Load with opts on first use.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// Config returns the cached Config, loading it if this is the first
// successful call.
func (l *Loader) Config() (Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cfg != nil {
		return *l.cfg, nil
	}

	cfg, err := Load(l.opts)
	if err != nil {
		return Config{}, err
	}

	l.cfg = &cfg

	return cfg, nil
}

// Static returns a config source that always yields cfg. It matches the
// signature of Loader.Config.
func Static(cfg Config) func() (Config, error) {
	return func() (Config, error) { return cfg, nil }
}
