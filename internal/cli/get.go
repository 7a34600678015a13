package cli

import (
	"context"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/arcraiders/pkg/errors"
)

// getters maps a resource name to its by-ID lookup.
func (c *CLI) getters() map[string]func(context.Context, string) (any, error) {
	cl := c.client
	return map[string]func(context.Context, string) (any, error){
		"item":   func(ctx context.Context, id string) (any, error) { return cl.Item(ctx, id) },
		"weapon": func(ctx context.Context, id string) (any, error) { return cl.Weapon(ctx, id) },
		"armor":  func(ctx context.Context, id string) (any, error) { return cl.ArmorPiece(ctx, id) },
		"quest":  func(ctx context.Context, id string) (any, error) { return cl.Quest(ctx, id) },
		"arc":    func(ctx context.Context, id string) (any, error) { return cl.Arc(ctx, id) },
		"trader": func(ctx context.Context, id string) (any, error) { return cl.Trader(ctx, id) },
	}
}

var getResources = []string{"item", "weapon", "armor", "quest", "arc", "trader"}

func (c *CLI) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "get <item|weapon|armor|quest|arc|trader> <id>",
		Short:     "Fetch a single record by ID",
		Example:   "  arcraiders get weapon anvil",
		Args:      cobra.ExactArgs(2),
		ValidArgs: getResources,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errs.ValidateFormat(args[0], getResources...); err != nil {
				return err
			}
			v, err := c.getters()[args[0]](cmd.Context(), args[1])
			if err != nil {
				return err
			}
			return c.printJSON(v)
		},
	}
}
