package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/kardex/internal/cache"
	"github.com/gravitrone/kardex/internal/config"
	"github.com/gravitrone/kardex/internal/feed"
)

// FetchCmd returns the `kardex fetch` command: one load cycle, printed to
// stdout instead of the TUI.
func FetchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the knowledge base once and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			store := cache.DefaultStore()
			client := feed.NewClient(cfg.FeedURL, cfg.Timeout())
			loader := feed.NewLoader(client, store, nil)
			result := loader.Load(context.Background())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result.Items)
			}

			if result.Message != "" {
				fmt.Fprintf(os.Stderr, "warning: %s\n", result.Message)
			}
			for _, item := range result.Items {
				line := fmt.Sprintf("  %-40s  %-12s", clip(item.Title, 40), clip(item.Category, 12))
				if len(item.Tags) > 0 {
					line += "  " + strings.Join(item.Tags, ",")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d entries\n", len(result.Items))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return cmd
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
