package main

import (
	"fmt"

	"github.com/HerbHall/authdeck/internal/theme/catalog"
	"github.com/HerbHall/authdeck/internal/version"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	family string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themectl",
		Short:         "Inspect presets and work with authdeck theme files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.family, "family", catalog.FamilyShadcn, "preset family (shadcn or tweakcn)")

	cmd.AddCommand(newPresetsCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newTokenCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		},
	})

	return cmd
}

func (f *rootFlags) catalogFamily() (*catalog.Family, error) {
	fam, ok := catalog.ByName(f.family)
	if !ok {
		return nil, fmt.Errorf("unknown preset family %q", f.family)
	}
	return fam, nil
}
