package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HerbHall/authdeck/internal/theme/importer"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check theme files the way the import endpoint does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				t, err := readTheme(path, importer.Format(format))
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %s\n", path, describeImportError(err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s: %q (%d light, %d dark)\n", path, t.Name, len(t.Light), len(t.Dark))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "force json, yaml or css instead of detecting")

	return cmd
}

func readTheme(path string, format importer.Format) (importer.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return importer.Theme{}, err
	}
	return importer.Parse(data, importer.Options{
		Format: format,
		Name:   filepath.Base(path),
		Source: filepath.Base(path),
	})
}

func describeImportError(err error) string {
	var ve *importer.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	switch {
	case ve.Variable != "":
		return fmt.Sprintf("%s %s: %v", ve.Section, ve.Variable, ve.Err)
	case ve.Section != "":
		return fmt.Sprintf("%s: %v", ve.Section, ve.Err)
	default:
		return ve.Err.Error()
	}
}
