package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	"github.com/matzehuels/arcraiders/pkg/export"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailKeyStyle    = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

var rarityColors = map[arcraiders.Rarity]lipgloss.Color{
	arcraiders.RarityCommon:    colorWhite,
	arcraiders.RarityUncommon:  colorGreen,
	arcraiders.RarityRare:      colorBlue,
	arcraiders.RarityEpic:      lipgloss.Color("141"),
	arcraiders.RarityLegendary: colorYellow,
}

func (c *CLI) browseCommand() *cobra.Command {
	var (
		lf    listFlags
		input string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse items interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				items []arcraiders.Item
				err   error
			)
			if input != "" {
				items, err = export.ImportJSON[[]arcraiders.Item](input)
			} else {
				items, err = fetching(cmd.Context(), c, "items", func(ctx context.Context) ([]arcraiders.Item, error) {
					return c.client.Items(ctx, lf.filter())
				})
			}
			if err != nil {
				return err
			}
			if len(items) == 0 {
				printInfo("No items")
				return nil
			}

			p := tea.NewProgram(NewItemListModel(items), tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	lf.addRarity(cmd)
	lf.addType(cmd)
	lf.addSearch(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "", "read items from an exported JSON file")

	return cmd
}

// =============================================================================
// ItemListModel - Interactive item browser
// =============================================================================

// ItemListModel is the bubbletea model for the item browser. Enter toggles
// a detail view of the item under the cursor.
type ItemListModel struct {
	Items   []arcraiders.Item
	Cursor  int
	Height  int
	Offset  int
	Details bool
}

// NewItemListModel creates a new item list model.
func NewItemListModel(items []arcraiders.Item) ItemListModel {
	return ItemListModel{
		Items:  items,
		Height: 15,
	}
}

func (m ItemListModel) Init() tea.Cmd {
	return nil
}

func (m ItemListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Details {
				m.Details = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Items) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		case "enter":
			m.Details = !m.Details
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ItemListModel) View() string {
	if m.Details && len(m.Items) > 0 {
		return m.detailView(m.Items[m.Cursor])
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render("Arc Raiders Items"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Items))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		it := m.Items[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, it.Name, orDash(string(it.Type)), orDash(string(it.Rarity))})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Type", "Rarity").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Items) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 3 {
				if color, ok := rarityColors[m.Items[idx].Rarity]; ok {
					base = base.Foreground(color)
				}
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))

	return b.String()
}

func (m ItemListModel) detailView(it arcraiders.Item) string {
	var b strings.Builder

	b.WriteString(listSelectedStyle.Render(it.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	field := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(detailKeyStyle.Render(key) + " " + StyleValue.Render(value) + "\n")
	}
	number := func(key string, v *float64) {
		if v != nil {
			field(key, fmt.Sprintf("%g", *v))
		}
	}

	field("ID", it.ID)
	field("Type", string(it.Type))
	field("Rarity", string(it.Rarity))
	if it.IsWeapon() {
		field("Class", string(it.WeaponType))
		number("Damage", it.Damage)
		number("Fire rate", it.FireRate)
		number("Range", it.Range)
	}
	if it.IsArmor() {
		field("Slot", string(it.Slot))
		number("Armor", it.ArmorValue)
	}
	if it.Description != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(72).Render(it.Description))
		b.WriteString("\n")
	}

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
