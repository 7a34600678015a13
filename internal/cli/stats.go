package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arcraiders/pkg/analytics"
	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	"github.com/matzehuels/arcraiders/pkg/export"
)

type statsOptions struct {
	table bool
	input string
}

func (c *CLI) statsCommand() *cobra.Command {
	var opts statsOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show weapon statistics and the item rarity distribution",
		Long: `Stats summarizes weapon damage, fire rate and range, names the strongest
weapon by damage, and counts items per rarity.

With --input the items are read from a file written by "export json" instead
of the API.`,
		Example: "  arcraiders stats\n  arcraiders stats --table\n  arcraiders stats --input items.json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weapons, items, err := c.loadStatsInput(cmd.Context(), opts.input)
			if err != nil {
				return err
			}
			report := analytics.Summarize(weapons, items)
			if opts.table {
				renderReport(c.out, report)
				return nil
			}
			return c.printJSON(report)
		},
	}

	cmd.Flags().BoolVar(&opts.table, "table", false, "render as tables instead of JSON")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read items from an exported JSON file")

	return cmd
}

func (c *CLI) loadStatsInput(ctx context.Context, input string) (weapons, items []arcraiders.Item, err error) {
	if input != "" {
		items, err = export.ImportJSON[[]arcraiders.Item](input)
		if err != nil {
			return nil, nil, err
		}
		for _, it := range items {
			if it.IsWeapon() {
				weapons = append(weapons, it)
			}
		}
		return weapons, items, nil
	}

	weapons, err = c.client.Weapons(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	items, err = c.client.Items(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	return weapons, items, nil
}

// =============================================================================
// Table Rendering
// =============================================================================

func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			default:
				return lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
			}
		})
}

func renderReport(w io.Writer, r analytics.Report) {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Weapons (%d)", r.Weapons.Total)))
	b.WriteString("\n")
	wt := newTable("Attribute", "Count", "Average", "Min", "Max", "Sum")
	for _, row := range []struct {
		name string
		s    *analytics.Stats
	}{
		{"damage", r.Weapons.Stats.Damage},
		{"fire rate", r.Weapons.Stats.FireRate},
		{"range", r.Weapons.Stats.Range},
	} {
		if row.s == nil {
			wt.Row(row.name, "0", "-", "-", "-", "-")
			continue
		}
		wt.Row(row.name,
			fmt.Sprint(row.s.Count),
			fmt.Sprintf("%.2f", row.s.Average),
			fmt.Sprintf("%g", row.s.Min),
			fmt.Sprintf("%g", row.s.Max),
			fmt.Sprintf("%g", row.s.Sum),
		)
	}
	b.WriteString(wt.Render())
	b.WriteString("\n")

	if best := r.Weapons.Best; best != nil {
		dmg := "-"
		if best.Damage != nil {
			dmg = fmt.Sprintf("%g", *best.Damage)
		}
		b.WriteString(StyleDim.Render("Best by damage: ") + StyleHighlight.Render(best.Name) + StyleDim.Render(" ("+dmg+")"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Items by rarity (%d)", r.Items.Total)))
	b.WriteString("\n")
	rt := newTable("Rarity", "Count")
	for _, k := range sortedRarities(r.Items.RarityDistribution) {
		rt.Row(k, fmt.Sprint(r.Items.RarityDistribution[k]))
	}
	b.WriteString(rt.Render())
	b.WriteString("\n")

	fmt.Fprint(w, b.String())
}

var rarityOrder = map[string]int{
	string(arcraiders.RarityCommon):    0,
	string(arcraiders.RarityUncommon):  1,
	string(arcraiders.RarityRare):      2,
	string(arcraiders.RarityEpic):      3,
	string(arcraiders.RarityLegendary): 4,
}

// sortedRarities orders known rarities from common to legendary, then any
// others alphabetically.
func sortedRarities(dist map[string]int) []string {
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iok := rarityOrder[keys[i]]
		rj, jok := rarityOrder[keys[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
