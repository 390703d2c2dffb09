package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HerbHall/authdeck/internal/theme/catalog"
	"github.com/HerbHall/authdeck/internal/theme/color"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type presetsOptions struct {
	jsonOutput bool
}

type presetRow struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Swatches    []string `json:"swatches"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	idStyle     = lipgloss.NewStyle().Width(14)
	nameStyle   = lipgloss.NewStyle().Width(18)
)

func newPresetsCmd(flags *rootFlags) *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the presets of a family with their swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fam, err := flags.catalogFamily()
			if err != nil {
				return err
			}
			return runPresets(cmd, fam, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPresets(cmd *cobra.Command, fam *catalog.Family, opts *presetsOptions) error {
	presets := fam.All()
	rows := make([]presetRow, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, presetRow{ID: p.ID, DisplayName: p.DisplayName, Swatches: p.Swatches()})
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s (%d presets)", fam.Name(), len(rows))))
	for _, r := range rows {
		fmt.Fprintf(out, "%s%s%s\n", idStyle.Render(r.ID), nameStyle.Render(r.DisplayName), swatches(r.Swatches))
	}
	return nil
}

// swatches renders each color as a filled block labelled with its hex value.
func swatches(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parsed, err := color.Parse(v)
		if err != nil {
			parts = append(parts, "?")
			continue
		}
		hex := parsed.Hex()
		fg := "#ffffff"
		if parsed.Luminance() > 0.4 {
			fg = "#000000"
		}
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(fg)).
			Padding(0, 1).
			Render(hex)
		parts = append(parts, block)
	}
	return strings.Join(parts, " ")
}
