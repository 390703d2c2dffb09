package main

import (
	"errors"
	"fmt"

	"github.com/HerbHall/authdeck/internal/theme/importer"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	preset string
	format string
	from   string
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write a preset or convert a theme file to json, yaml or css",
		Example: `  themectl export --preset rose --format css
  themectl export --family tweakcn --preset caffeine --format yaml
  themectl export globals.css --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				t   importer.Theme
				err error
			)
			switch {
			case len(args) == 1 && opts.preset != "":
				return errors.New("pass either a file or --preset, not both")
			case len(args) == 1:
				t, err = readTheme(args[0], importer.Format(opts.from))
				if err != nil {
					return fmt.Errorf("%s: %s", args[0], describeImportError(err))
				}
			case opts.preset != "":
				fam, err := flags.catalogFamily()
				if err != nil {
					return err
				}
				p, ok := fam.Lookup(opts.preset)
				if !ok {
					return fmt.Errorf("preset %q not found in %s", opts.preset, fam.Name())
				}
				t = importer.Theme{ID: p.ID, Name: p.DisplayName, Light: p.Light, Dark: p.Dark}
			default:
				return errors.New("nothing to export: pass a file or --preset")
			}
			return importer.Write(cmd.OutOrStdout(), t, importer.Format(opts.format))
		},
	}

	cmd.Flags().StringVar(&opts.preset, "preset", "", "preset id from --family")
	cmd.Flags().StringVarP(&opts.format, "format", "o", string(importer.FormatCSS), "output format: json, yaml or css")
	cmd.Flags().StringVar(&opts.from, "from", "", "input format when it cannot be detected")

	return cmd
}
