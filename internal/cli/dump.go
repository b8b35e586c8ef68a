package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/keysym"
)

// defaultDumpColumns is how many columns dump shows without --columns.
const defaultDumpColumns = 4

type dumpOpts struct {
	columns    string // column selection in keymaps-directive syntax
	raw        bool   // show keysym names instead of labels
	json       bool   // print the table as JSON
	includeDir string
}

// dumpCommand creates the dump command.
func (c *CLI) dumpCommand() *cobra.Command {
	var opts dumpOpts

	cmd := &cobra.Command{
		Use:   "dump <keymap>",
		Short: "Print the interpreted keymap table",
		Example: `  kbdlayout dump de.map
  kbdlayout dump de.map --columns 0-3,8 --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDump(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.columns, "columns", "", "columns to show, e.g. 0-2,8 (default 0-3)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "show keysym names instead of labels")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the table as JSON")
	cmd.Flags().StringVarP(&opts.includeDir, "include-dir", "I", "", "directory include files are resolved in")

	return cmd
}

func (c *CLI) runDump(ctx context.Context, input string, opts dumpOpts) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}

	popts := c.pipelineOptions()
	popts.Path = input
	if opts.includeDir != "" {
		popts.IncludeDir = opts.includeDir
	}
	km, err := runner.Interpret(ctx, popts)
	if err != nil {
		return err
	}

	if opts.json {
		data, err := json.MarshalIndent(km, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.Out, string(data))
		return err
	}

	columns, err := dumpColumns(opts.columns, km)
	if err != nil {
		return err
	}
	rows, modifiers, err := dumpRows(km, columns, c.cfg.Resolver(), opts.raw)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.Out, renderDumpTable(columns, rows, modifiers))
	printDetail(c.Out, "%d keycodes, %d columns", km.Len(), km.Columns())
	return nil
}

// dumpColumns parses the column selection, defaulting to the first few
// columns the table uses.
func dumpColumns(spec string, km *keymap.Keymap) ([]int, error) {
	if spec != "" {
		return keymap.ParseColumns(spec)
	}
	n := min(max(km.Columns(), 1), defaultDumpColumns)
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}
	return cols, nil
}

// dumpRows builds one row per keycode: the keycode, then the label (or raw
// keysym) in each selected column. modifiers marks rows whose main label is
// a modifier key.
func dumpRows(km *keymap.Keymap, columns []int, resolver *keysym.Resolver, raw bool) (rows [][]string, modifiers map[int]bool, err error) {
	modifiers = make(map[int]bool)
	for i, code := range km.Keycodes() {
		syms, _ := km.Keysyms(code)
		labels, err := resolver.Labels(syms)
		if err != nil {
			return nil, nil, fmt.Errorf("keycode %d: %w", code, err)
		}
		if keysym.RoleOf(keysym.MainLabel(labels)) == keysym.RoleModifier {
			modifiers[i] = true
		}

		cells := labels
		if raw {
			cells = syms
		}
		row := []string{strconv.Itoa(code)}
		for _, col := range columns {
			cell := ""
			if col < len(cells) {
				cell = cells[col]
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return rows, modifiers, nil
}

func renderDumpTable(columns []int, rows [][]string, modifiers map[int]bool) string {
	headers := []string{"keycode"}
	for _, col := range columns {
		headers = append(headers, keymap.ColumnName(col))
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorGray)
			case modifiers[row]:
				return base.Inherit(StyleModifier)
			}
			return base
		}).
		String()
}
