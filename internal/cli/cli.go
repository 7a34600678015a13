package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	"github.com/matzehuels/arcraiders/pkg/buildinfo"
	"github.com/matzehuels/arcraiders/pkg/observability"
	"github.com/matzehuels/arcraiders/pkg/transport"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "arcraiders"

	// envPrefix prefixes every configuration environment variable.
	envPrefix = "ARCRAIDERS_"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out    io.Writer
	status io.Writer // spinner output; nil when stderr is not a terminal
	flags  globalFlags
	config Config
	client *arcraiders.Client

	// newTransport builds the API transport from the resolved config.
	newTransport func(Config) transport.Transport
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:       newLogger(w, level),
		out:          os.Stdout,
		status:       terminalStderr(),
		newTransport: defaultTransport,
	}
}

// Close releases the client built by the last command, if any. Cobra skips
// post-run hooks when a command fails, so callers close from a defer.
func (c *CLI) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (JSON, CSV, tables).
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Arc Raiders game data from the command line",
		Long:          `arcraiders fetches items, weapons, armor, quests, ARCs, traders and maps from the MetaForge Arc Raiders API, and exports or summarizes them.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	c.flags.register(root.PersistentFlags())

	root.AddCommand(c.itemsCommand())
	root.AddCommand(c.weaponsCommand())
	root.AddCommand(c.armorCommand())
	root.AddCommand(c.questsCommand())
	root.AddCommand(c.arcsCommand())
	root.AddCommand(c.tradersCommand())
	root.AddCommand(c.mapsCommand())
	root.AddCommand(c.getCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup resolves configuration and builds the shared client. It runs once
// before any subcommand.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.flags.configFile, ".env")
	if err != nil {
		return err
	}
	c.flags.apply(cmd.Flags(), &cfg)
	if err := cfg.validate(); err != nil {
		return err
	}
	c.config = cfg

	observability.SetCacheHooks(&logHooks{logger: c.Logger})
	observability.SetHTTPHooks(&logHooks{logger: c.Logger})

	c.client = c.newClient(cfg)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	c.Logger.Debug("configured client",
		"base_url", cfg.BaseURL,
		"browser", cfg.Browser,
		"cache_ttl", cfg.CacheTTL,
		"no_cache", cfg.NoCache,
	)
	return nil
}

// =============================================================================
// Client Factory
// =============================================================================

func (c *CLI) newClient(cfg Config) *arcraiders.Client {
	opts := []arcraiders.Option{
		arcraiders.WithLogger(c.Logger),
		arcraiders.WithCacheTTL(cfg.CacheTTL),
	}
	if cfg.NoCache {
		opts = append(opts, arcraiders.WithCacheDisabled())
	}
	if cfg.MapsURL != "" {
		opts = append(opts, arcraiders.WithMapsURL(cfg.MapsURL))
	}
	return arcraiders.New(c.newTransport(cfg), opts...)
}

func defaultTransport(cfg Config) transport.Transport {
	if cfg.Browser {
		return transport.NewBrowser(cfg.BaseURL, transport.BrowserOptions{Timeout: cfg.Timeout})
	}
	return transport.NewHTTP(cfg.BaseURL, transport.HTTPOptions{
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
}
