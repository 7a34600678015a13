package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	errs "github.com/matzehuels/arcraiders/pkg/errors"
	"github.com/matzehuels/arcraiders/pkg/export"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

var exportResources = []string{"items", "weapons", "armor", "quests", "arcs"}

type exportOptions struct {
	format   string
	output   string
	resource string
	headers  []string
}

func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export <json|csv>",
		Short: "Export a resource listing as JSON or CSV",
		Long: `Export fetches every record of a resource and writes it as JSON or CSV.

Without --output the result is printed. CSV columns are the flattened keys of
the first record; nested objects become dotted names such as "stats.damage".`,
		Example:   "  arcraiders export json --output data.json\n  arcraiders export csv --resource weapons --output weapons.csv",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{formatJSON, formatCSV},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = args[0]
			if err := errs.ValidateFormat(opts.format, formatJSON, formatCSV); err != nil {
				return err
			}
			if err := errs.ValidateFormat(opts.resource, exportResources...); err != nil {
				return err
			}
			return c.runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.resource, "resource", "r", "items", "resource to export ("+strings.Join(exportResources, ", ")+")")
	cmd.Flags().StringSliceVar(&opts.headers, "headers", nil, "CSV columns to write, in order")
	_ = cmd.RegisterFlagCompletionFunc("resource", cobra.FixedCompletions(exportResources, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runExport(ctx context.Context, opts exportOptions) error {
	prog := startExport(loggerFromContext(ctx), opts.resource)

	var (
		n   int
		err error
	)
	switch opts.resource {
	case "items":
		n, err = exportList(ctx, c, opts, c.client.Items)
	case "weapons":
		n, err = exportList(ctx, c, opts, c.client.Weapons)
	case "armor":
		n, err = exportList(ctx, c, opts, c.client.Armor)
	case "quests":
		n, err = exportList(ctx, c, opts, c.client.Quests)
	case "arcs":
		n, err = exportList(ctx, c, opts, c.client.Arcs)
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		prog.done(n, opts.output)
		printSuccess("Exported %d %s", n, opts.resource)
		printFile(opts.output)
	}
	return nil
}

// exportList fetches a listing and writes it in the requested format.
func exportList[T any](ctx context.Context, c *CLI, opts exportOptions, list func(context.Context, *arcraiders.Filter) ([]T, error)) (int, error) {
	records, err := fetching(ctx, c, opts.resource, func(ctx context.Context) ([]T, error) {
		return list(ctx, nil)
	})
	if err != nil {
		return 0, err
	}

	csvOpts := export.Options{Headers: opts.headers}
	switch {
	case opts.format == formatJSON && opts.output != "":
		err = export.ExportJSON(records, opts.output)
	case opts.format == formatJSON:
		err = export.WriteJSON(c.out, records)
	case opts.output != "":
		err = export.ExportCSV(records, opts.output, csvOpts)
	default:
		err = export.WriteCSV(c.out, records, csvOpts)
	}
	return len(records), err
}
