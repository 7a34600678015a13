package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	"github.com/matzehuels/arcraiders/pkg/export"
)

// listFlags are the filter flags shared by the list commands.
type listFlags struct {
	rarity     []string
	types      []string
	difficulty []string
	search     string
}

var rarityNames = []string{"common", "uncommon", "rare", "epic", "legendary"}

func (lf *listFlags) addRarity(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&lf.rarity, "rarity", nil, "filter by rarity (comma-separated, any case)")
	_ = cmd.RegisterFlagCompletionFunc("rarity", cobra.FixedCompletions(rarityNames, cobra.ShellCompDirectiveNoFileComp))
}

func (lf *listFlags) addType(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&lf.types, "type", nil, "filter by item type (weapon, armor, consumable, ...)")
}

func (lf *listFlags) addDifficulty(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&lf.difficulty, "difficulty", nil, "filter by difficulty (easy, medium, hard, extreme)")
}

func (lf *listFlags) addSearch(cmd *cobra.Command) {
	cmd.Flags().StringVar(&lf.search, "search", "", "free-text search")
}

// filter converts the flags into a client filter; nil when none are set.
func (lf *listFlags) filter() *arcraiders.Filter {
	f := &arcraiders.Filter{Search: lf.search}
	for _, r := range lf.rarity {
		f.Rarity = append(f.Rarity, arcraiders.Rarity(r))
	}
	for _, t := range lf.types {
		f.Type = append(f.Type, arcraiders.ItemType(t))
	}
	for _, d := range lf.difficulty {
		f.Difficulty = append(f.Difficulty, arcraiders.Difficulty(d))
	}
	if len(f.Rarity) == 0 && len(f.Type) == 0 && len(f.Difficulty) == 0 && f.Search == "" {
		return nil
	}
	return f
}

// printJSON writes v to the command output as indented JSON.
func (c *CLI) printJSON(v any) error {
	return export.WriteJSON(c.out, v)
}

func (c *CLI) itemsCommand() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List all items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := c.client.Items(cmd.Context(), lf.filter())
			if err != nil {
				return err
			}
			return c.printJSON(items)
		},
	}
	lf.addRarity(cmd)
	lf.addType(cmd)
	lf.addSearch(cmd)
	return cmd
}

func (c *CLI) weaponsCommand() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:     "weapons",
		Short:   "List all weapons",
		Example: "  arcraiders weapons --rarity legendary",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weapons, err := c.client.Weapons(cmd.Context(), lf.filter())
			if err != nil {
				return err
			}
			return c.printJSON(weapons)
		},
	}
	lf.addRarity(cmd)
	lf.addSearch(cmd)
	return cmd
}

func (c *CLI) armorCommand() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "armor",
		Short: "List all armor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			armor, err := c.client.Armor(cmd.Context(), lf.filter())
			if err != nil {
				return err
			}
			return c.printJSON(armor)
		},
	}
	lf.addRarity(cmd)
	lf.addSearch(cmd)
	return cmd
}

func (c *CLI) questsCommand() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List all quests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quests, err := c.client.Quests(cmd.Context(), lf.filter())
			if err != nil {
				return err
			}
			return c.printJSON(quests)
		},
	}
	lf.addDifficulty(cmd)
	lf.addSearch(cmd)
	return cmd
}

func (c *CLI) arcsCommand() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "arcs",
		Short: "List all ARCs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			arcs, err := c.client.Arcs(cmd.Context(), lf.filter())
			if err != nil {
				return err
			}
			return c.printJSON(arcs)
		},
	}
	lf.addDifficulty(cmd)
	lf.addSearch(cmd)
	return cmd
}

func (c *CLI) tradersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "traders",
		Short: "List every trader's inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			traders, err := c.client.Traders(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(traders)
		},
	}
}

func (c *CLI) mapsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "maps [name]",
		Short:     "Show map data for one map, or all known maps",
		Example:   "  arcraiders maps\n  arcraiders maps \"Buried City\"",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: arcraiders.DefaultMaps,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				m, err := c.client.MapData(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.printJSON(m)
			}
			maps, err := c.client.Maps(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(maps)
		},
	}
}

func (c *CLI) searchCommand() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search items by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.client.Search(cmd.Context(), args[0], lf.filter())
			if err != nil {
				return err
			}
			return c.printJSON(res)
		},
	}
	lf.addRarity(cmd)
	lf.addType(cmd)
	return cmd
}
