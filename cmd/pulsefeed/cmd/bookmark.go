package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bookmarkList bool

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark [item-id]",
	Short: "Bookmark items for later",
	Long: `Toggle a bookmark on an item, or list current bookmarks. Bookmarks
persist across runs when a state file is configured.

Examples:
  # Toggle a bookmark
  pulsefeed bookmark 6ab14e2f90c31d58

  # List bookmarks
  pulsefeed bookmark --list`,
	RunE: runBookmark,
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)

	bookmarkCmd.Flags().BoolVar(&bookmarkList, "list", false, "List bookmarked item IDs")
}

func runBookmark(cmd *cobra.Command, args []string) error {
	stateStore, err := openState(GetConfig())
	if err != nil {
		return fmt.Errorf("failed to open state: %w", err)
	}

	if bookmarkList {
		bookmarks := stateStore.Bookmarks()
		if len(bookmarks) == 0 {
			fmt.Println("No bookmarks.")
			return nil
		}
		for _, id := range bookmarks {
			fmt.Println(id)
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("expected an item ID, or --list")
	}

	added, err := stateStore.ToggleBookmark(args[0])
	if err != nil {
		return fmt.Errorf("failed to toggle bookmark: %w", err)
	}
	if added {
		fmt.Printf("Bookmarked %s\n", args[0])
	} else {
		fmt.Printf("Removed bookmark %s\n", args[0])
	}
	return nil
}
