package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	sheetsvc "github.com/KirkDiggler/sheet-engine/internal/services/sheet"
)

var (
	saveID    string
	saveOwner string
	saveName  string
)

var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Recompute a sheet and store it in Redis",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

func init() {
	saveCmd.Flags().StringVar(&saveID, "id", "", "sheet ID to update (omit to create)")
	saveCmd.Flags().StringVar(&saveOwner, "owner", "", "owner ID")
	saveCmd.Flags().StringVar(&saveName, "name", "", "sheet name (defaults to character.name)")
	_ = saveCmd.MarkFlagRequired("owner")
}

func runSave(cmd *cobra.Command, args []string) error {
	b, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		return err
	}

	svc, cleanup, err := newStoreService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.SaveSheet(cmd.Context(), &sheetsvc.SaveSheetInput{
		ID:      saveID,
		OwnerID: saveOwner,
		Name:    saveName,
		Text:    string(b),
	})
	if err != nil {
		return err
	}

	fmt.Printf("saved sheet %s (%s)\n", out.Sheet.ID, out.Sheet.Name)
	return nil
}

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Print a stored sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newStoreService()
		if err != nil {
			return err
		}
		defer cleanup()

		stored, err := svc.GetSheet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Print(stored.Source)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list [owner]",
	Short: "List stored sheets for an owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newStoreService()
		if err != nil {
			return err
		}
		defer cleanup()

		stored, err := svc.ListSheets(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, s := range stored {
			fmt.Printf("%s\t%s\t%s\n", s.ID, s.Name, s.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a stored sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newStoreService()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := svc.DeleteSheet(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted sheet %s\n", args[0])
		return nil
	},
}
