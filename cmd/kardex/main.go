package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/gravitrone/kardex/internal/cache"
	cmdpkg "github.com/gravitrone/kardex/internal/cmd"
	"github.com/gravitrone/kardex/internal/config"
	"github.com/gravitrone/kardex/internal/feed"
	"github.com/gravitrone/kardex/internal/logging"
	"github.com/gravitrone/kardex/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "kardex",
		Short: "Kardex - knowledge base card viewer",
		Long:  "Kardex renders a published knowledge base as searchable, filterable cards in the terminal.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmdpkg.FetchCmd())
	root.AddCommand(cmdpkg.CacheCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store := cache.DefaultStore()
	log := logging.Open(store.Dir())
	defer log.Sync()

	client := feed.NewClient(cfg.FeedURL, cfg.Timeout())
	loader := feed.NewLoader(client, store, log)
	app := ui.NewApp(loader, store, cfg.Interval())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
