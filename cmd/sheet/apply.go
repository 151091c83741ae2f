package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var applyModifier string

var applyCmd = &cobra.Command{
	Use:   "apply [file]",
	Short: "Apply a modifier to a sheet (placeholder)",
	Long:  "Accepts an opaque modifier description and echoes the sheet back. The modifier contract is not designed yet.",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyModifier, "modifier", "m", "", "modifier description")
}

func runApply(cmd *cobra.Command, args []string) error {
	b, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		return err
	}

	out, err := newService().ApplyModifier(string(b), applyModifier)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Print(out)
	return nil
}
