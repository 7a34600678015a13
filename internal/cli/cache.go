package cli

import (
	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the response cache",
		Long: `The response cache lives in memory for the duration of one command.
Use --cache-ttl to change how long results are reused and --no-cache to
bypass it entirely.`,
	}

	cmd.AddCommand(c.cacheInfoCommand())

	return cmd
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the effective cache settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.config.NoCache {
				printKeyValue("Cache", "disabled")
				return nil
			}
			printKeyValue("Cache", "memory")
			printKeyValue("TTL", c.config.CacheTTL.String())
			return nil
		},
	}
}
