package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dshills/gridmouse/internal/input/keymap"
)

// errCheckFailed is returned by keymap --check when problems were found.
var errCheckFailed = errors.New("key map check failed")

var (
	tableBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tableHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	tableCell   = lipgloss.NewStyle().Padding(0, 1)
	tableCenter = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1)
	tableMissed = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
)

const missingLabel = "--"

func newKeymapCmd(opts *rootOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:       "keymap [coarse|fine]",
		Short:     "Print the generated grid key maps",
		Long:      "Print the combo typed to reach each grid cell. Without an argument both maps are printed.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"coarse", "fine"},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.load(nil)
			if err != nil {
				return err
			}
			// Map problems are already part of the warnings.
			maps, _ := res.Config.Keymaps()

			out := cmd.OutOrStdout()
			which := ""
			if len(args) == 1 {
				which = args[0]
			}
			if !check {
				if which != "fine" {
					fmt.Fprintf(out, "coarse %dx%d\n%s\n", maps.Coarse.Cols(), maps.Coarse.Rows(), renderMap(maps.Coarse, nil))
				}
				if which != "coarse" {
					center := maps.Fine.Center()
					fmt.Fprintf(out, "fine %dx%d (Space = %s)\n%s\n", maps.Fine.Cols(), maps.Fine.Rows(), center, renderMap(maps.Fine, &center))
				}
			}

			problems := len(res.Warnings)
			for _, w := range res.Warnings.Strings() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			if check {
				if problems > 0 {
					return fmt.Errorf("%d problem(s): %w", problems, errCheckFailed)
				}
				fmt.Fprintln(out, "key maps ok")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Only validate the configuration and exit non-zero on problems")
	return cmd
}

// renderMap draws m as a table of combos with row and column indices.
func renderMap(m *keymap.GridMap, highlight *keymap.Cell) string {
	if m.Cols() <= 0 || m.Rows() <= 0 {
		return "(empty)"
	}
	headers := make([]string, m.Cols()+1)
	for c := range m.Cols() {
		headers[c+1] = strconv.Itoa(c)
	}

	rows := make([][]string, m.Rows())
	for r := range m.Rows() {
		row := make([]string, m.Cols()+1)
		row[0] = strconv.Itoa(r)
		for c := range m.Cols() {
			row[c+1] = missingLabel
			if combo, ok := m.Label(keymap.Cell{Row: r, Col: c}); ok {
				row[c+1] = combo.String()
			}
		}
		rows[r] = row
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow || col == 0:
				return tableHeader
			case highlight != nil && row == highlight.Row && col-1 == highlight.Col:
				return tableCenter
			case rows[row][col] == missingLabel:
				return tableMissed
			}
			return tableCell
		})
	return t.Render()
}
