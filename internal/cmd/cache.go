package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/kardex/internal/cache"
	"github.com/gravitrone/kardex/internal/feed"
)

// CacheCmd returns the `kardex cache` command group.
func CacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the offline snapshot",
	}
	cmd.AddCommand(cacheShowCmd())
	cmd.AddCommand(cacheClearCmd())
	return cmd
}

func cacheShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cached snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := cache.DefaultStore()

			var snap feed.Snapshot
			if !store.LoadSnapshot(&snap) {
				fmt.Fprintln(cmd.OutOrStdout(), "no snapshot cached")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "snapshot from %s, %d entries\n",
				snap.SavedAt.Format("2006-01-02 15:04"), len(snap.Items))
			for _, item := range snap.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-40s  %s\n", clip(item.Title, 40), item.Category)
			}
			return nil
		},
	}
}

func cacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the cached snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := cache.DefaultStore()
			if err := store.ClearSnapshot(); err != nil {
				return fmt.Errorf("clear snapshot: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "snapshot cleared")
			return nil
		},
	}
}
