package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check sheet files for well-formedness",
	Long:  "Validates that each file parses as a sheet document. No rule checking happens here; an empty file is valid.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	svc := newService()

	failed := 0
	for _, path := range args {
		b, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return err
		}
		if svc.Validate(string(b)) {
			fmt.Printf("%s: ok\n", path)
		} else {
			fmt.Printf("%s: invalid\n", path)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
