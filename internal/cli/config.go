package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	errs "github.com/matzehuels/arcraiders/pkg/errors"
	"github.com/matzehuels/arcraiders/pkg/transport"
)

// Config is the resolved CLI configuration. Values are layered, later
// sources winning: defaults, config file, environment, flags.
type Config struct {
	BaseURL  string        `toml:"base_url" env:"BASE_URL"`
	MapsURL  string        `toml:"maps_url" env:"MAPS_URL"`
	APIKey   string        `toml:"api_key" env:"API_KEY"`
	Timeout  time.Duration `toml:"timeout" env:"TIMEOUT"`
	CacheTTL time.Duration `toml:"cache_ttl" env:"CACHE_TTL"`
	NoCache  bool          `toml:"no_cache" env:"NO_CACHE"`
	Browser  bool          `toml:"browser" env:"BROWSER"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:  arcraiders.DefaultBaseURL,
		MapsURL:  arcraiders.DefaultMapsURL,
		Timeout:  transport.DefaultTimeout,
		CacheTTL: arcraiders.DefaultCacheTTL,
	}
}

func (cfg Config) validate() error {
	if err := errs.ValidateURL(cfg.BaseURL); err != nil {
		return err
	}
	if cfg.Timeout <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.CacheTTL <= 0 && !cfg.NoCache {
		return errs.New(errs.ErrCodeInvalidInput, "cache ttl must be positive, got %s", cfg.CacheTTL)
	}
	return nil
}

// loadConfig layers the config file and environment over the defaults.
// An empty path means the default location. Missing files are skipped.
func loadConfig(path string, dotenv ...string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || explicit {
				return cfg, errs.Wrap(errs.ErrCodeInvalidInput, err, "read config %s", path)
			}
		}
	}

	for _, f := range dotenv {
		// godotenv never overrides variables already set in the process.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, errs.Wrap(errs.ErrCodeInvalidInput, err, "read %s", f)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse environment")
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/arcraiders/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// =============================================================================
// Global Flags
// =============================================================================

type globalFlags struct {
	configFile string
	baseURL    string
	apiKey     string
	timeout    time.Duration
	cacheTTL   time.Duration
	noCache    bool
	browser    bool
}

func (g *globalFlags) register(set *pflag.FlagSet) {
	def := DefaultConfig()
	set.StringVar(&g.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/arcraiders/config.toml)")
	set.StringVar(&g.baseURL, "base-url", def.BaseURL, "API base URL")
	set.StringVar(&g.apiKey, "api-key", "", "API key sent as a bearer token")
	set.DurationVar(&g.timeout, "timeout", def.Timeout, "request timeout")
	set.DurationVar(&g.cacheTTL, "cache-ttl", def.CacheTTL, "how long responses are cached")
	set.BoolVar(&g.noCache, "no-cache", false, "disable response caching")
	set.BoolVar(&g.browser, "browser", false, "fetch through headless Chrome")
}

// apply copies explicitly set flags over cfg.
func (g *globalFlags) apply(set *pflag.FlagSet, cfg *Config) {
	if set.Changed("base-url") {
		cfg.BaseURL = g.baseURL
	}
	if set.Changed("api-key") {
		cfg.APIKey = g.apiKey
	}
	if set.Changed("timeout") {
		cfg.Timeout = g.timeout
	}
	if set.Changed("cache-ttl") {
		cfg.CacheTTL = g.cacheTTL
	}
	if set.Changed("no-cache") {
		cfg.NoCache = g.noCache
	}
	if set.Changed("browser") {
		cfg.Browser = g.browser
	}
}
