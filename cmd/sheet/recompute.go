package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	sheetsvc "github.com/KirkDiggler/sheet-engine/internal/services/sheet"
)

var recomputeWrite bool

var recomputeCmd = &cobra.Command{
	Use:   "recompute [file...]",
	Short: "Recompute derived fields in sheet files",
	Long:  "Recomputes ability modifiers, skill totals, attack bonuses, and carrying capacity. A single file prints to stdout; with --write files are updated in place, concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecompute,
}

func init() {
	recomputeCmd.Flags().BoolVarP(&recomputeWrite, "write", "w", false, "write results back to the files instead of printing")
}

func runRecompute(cmd *cobra.Command, args []string) error {
	svc := newService()

	if !recomputeWrite {
		if len(args) > 1 {
			return fmt.Errorf("recomputing multiple files requires --write")
		}
		b, err := os.ReadFile(filepath.Clean(args[0]))
		if err != nil {
			return err
		}
		out, err := svc.Recompute(string(b))
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Print(out)
		return nil
	}

	g, _ := errgroup.WithContext(cmd.Context())
	for _, path := range args {
		path := path
		g.Go(func() error {
			return recomputeFile(svc, path)
		})
	}
	return g.Wait()
}

func recomputeFile(svc sheetsvc.Service, path string) error {
	clean := filepath.Clean(path)
	b, err := os.ReadFile(clean)
	if err != nil {
		return err
	}

	out, err := svc.Recompute(string(b))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if out == string(b) {
		return nil
	}

	info, err := os.Stat(clean)
	if err != nil {
		return err
	}
	return os.WriteFile(clean, []byte(out), info.Mode().Perm())
}
