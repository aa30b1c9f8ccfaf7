package ui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/kardex/internal/cache"
	"github.com/gravitrone/kardex/internal/feed"
)

func testApp() App {
	return NewApp(nil, nil, 0)
}

func loadedApp(items []feed.Item) App {
	app := testApp()
	model, _ := app.Update(itemsLoadedMsg{seq: 0, result: feed.Result{
		Items:       items,
		LastUpdated: time.Now(),
	}})
	return model.(App)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(app App, msg tea.Msg) App {
	model, _ := app.Update(msg)
	return model.(App)
}

func cardItems() []feed.Item {
	return []feed.Item{
		{ID: "1", Title: "Go Schedulers", Category: "Go", Tags: []string{"runtime"}, Date: "2025-03-01", Link: "https://example.com/a"},
		{ID: "2", Title: "Pod Networking", Category: "DevOps", Tags: []string{"k8s"}, Date: "2025-06-01"},
		{ID: "3", Title: "Prompt Notes", Category: "AI", Tags: []string{"llm"}},
	}
}

func TestLoadedResultReplacesCollection(t *testing.T) {
	app := loadedApp(cardItems())

	assert.True(t, app.loaded)
	assert.False(t, app.loading)
	assert.Len(t, app.items, 3)
	assert.Len(t, app.visible, 3)
	assert.Equal(t, []string{"All", "AI", "DevOps", "Go"}, app.categories)
}

func TestSupersededResultIsDiscarded(t *testing.T) {
	app := loadedApp(cardItems())
	app.loadSeq = 2
	app.loading = true

	// A result from load #1 arrives after load #2 was started.
	app = press(app, itemsLoadedMsg{seq: 1, result: feed.Result{
		Items: []feed.Item{{ID: "stale", Title: "Stale"}},
	}})

	assert.True(t, app.loading, "stale result must not end the newer load")
	assert.Len(t, app.items, 3)
}

func TestErrorMessageShownAlongsideItems(t *testing.T) {
	app := loadedApp(cardItems())
	app = press(app, itemsLoadedMsg{seq: 0, result: feed.Result{
		Items:   cardItems(),
		Message: "Refresh failed: HTTP 500 fetching feed. Showing last known data.",
	}})

	assert.Len(t, app.visible, 3)
	assert.Contains(t, app.View(), "Refresh failed")
}

func TestSearchTypingFiltersLive(t *testing.T) {
	app := loadedApp(cardItems())

	app = press(app, keyRunes("/"))
	require.True(t, app.searching)

	for _, ch := range []string{"p", "o", "d"} {
		app = press(app, keyRunes(ch))
	}

	assert.Equal(t, "pod", app.filter.Query)
	require.Len(t, app.visible, 1)
	assert.Equal(t, "2", app.visible[0].ID)

	app = press(app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, app.searching)
	assert.Equal(t, "pod", app.filter.Query, "enter keeps the query")
}

func TestSearchAcceptsNonASCIIAndRuneBackspace(t *testing.T) {
	app := loadedApp(cardItems())
	app = press(app, keyRunes("/"))

	// Pasted text arrives as one multi-rune key message.
	app = press(app, keyRunes("café"))
	app = press(app, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	app = press(app, keyRunes("編"))
	assert.Equal(t, "café 編", app.filter.Query)

	// Backspace removes whole runes, never partial UTF-8 bytes.
	app = press(app, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "café ", app.filter.Query)
	app = press(app, tea.KeyMsg{Type: tea.KeyBackspace})
	app = press(app, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "caf", app.filter.Query)
}

func TestSearchEscClearsQuery(t *testing.T) {
	app := loadedApp(cardItems())
	app = press(app, keyRunes("/"))
	app = press(app, keyRunes("x"))
	require.Empty(t, app.visible)

	app = press(app, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, app.searching)
	assert.Empty(t, app.filter.Query)
	assert.Len(t, app.visible, 3)
}

func TestCategoryCycling(t *testing.T) {
	app := loadedApp(cardItems())

	app = press(app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "AI", app.filter.Category)
	require.Len(t, app.visible, 1)
	assert.Equal(t, "3", app.visible[0].ID)

	app = press(app, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "All", app.filter.Category)
	assert.Len(t, app.visible, 3)

	// wraps around
	app = press(app, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Go", app.filter.Category)
}

func TestTagPickerToggles(t *testing.T) {
	app := loadedApp(cardItems())

	app = press(app, keyRunes("t"))
	require.True(t, app.tagPicking)
	assert.Equal(t, []string{"k8s", "llm", "runtime"}, app.tagOptions)

	app = press(app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, app.tagPicking)
	assert.Equal(t, "k8s", app.filter.Tag)
	require.Len(t, app.visible, 1)

	// selecting the same tag again clears it
	app = press(app, keyRunes("t"))
	app = press(app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, app.filter.Tag)
	assert.Len(t, app.visible, 3)
}

func TestEscClearsQueryAndTag(t *testing.T) {
	app := loadedApp(cardItems())
	app.filter.Query = "go"
	app.filter.Tag = "runtime"
	app.applyFilters()

	app = press(app, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, app.filter.Query)
	assert.Empty(t, app.filter.Tag)
	assert.Len(t, app.visible, 3)
}

func TestDarkToggleFlipsAndPersists(t *testing.T) {
	store := cache.NewStore(t.TempDir())
	app := NewApp(nil, store, 0)
	require.False(t, app.theme.Dark)

	app = press(app, keyRunes("d"))
	assert.True(t, app.theme.Dark)
	assert.True(t, store.DarkMode())

	app = press(app, keyRunes("d"))
	assert.False(t, app.theme.Dark)
	assert.False(t, store.DarkMode())
}

func TestDarkPreferenceRestoredOnStart(t *testing.T) {
	store := cache.NewStore(t.TempDir())
	require.NoError(t, store.SaveDarkMode(true))

	app := NewApp(nil, store, 0)
	assert.True(t, app.theme.Dark)
}

func TestRefreshKeyStartsNewLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items":[{"id":"r1","title":"Fresh"}]}`))
	}))
	t.Cleanup(srv.Close)

	loader := feed.NewLoader(feed.NewClient(srv.URL), nil, nil)
	app := NewApp(loader, nil, 0)

	model, cmd := app.Update(keyRunes("r"))
	app = model.(App)
	require.NotNil(t, cmd)
	assert.True(t, app.loading)
	assert.Equal(t, 1, app.loadSeq)

	msg := findLoadedMsg(t, cmd)
	app = press(app, msg)

	require.Len(t, app.items, 1)
	assert.Equal(t, "Fresh", app.items[0].Title)
	assert.False(t, app.loading)
}

func TestManualRefreshSupersedesInFlightLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items":[{"id":"r1","title":"Fresh"}]}`))
	}))
	t.Cleanup(srv.Close)

	loader := feed.NewLoader(feed.NewClient(srv.URL), nil, nil)
	app := NewApp(loader, nil, 0)

	model, firstCmd := app.Update(keyRunes("r"))
	app = model.(App)
	model, secondCmd := app.Update(keyRunes("r"))
	app = model.(App)

	stale := findLoadedMsg(t, firstCmd)
	fresh := findLoadedMsg(t, secondCmd)

	app = press(app, stale)
	assert.True(t, app.loading, "first load was superseded")

	app = press(app, fresh)
	assert.False(t, app.loading)
	assert.Len(t, app.items, 1)
}

// findLoadedMsg runs a (possibly batched) command tree until it produces an
// itemsLoadedMsg.
func findLoadedMsg(t *testing.T, cmd tea.Cmd) itemsLoadedMsg {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case itemsLoadedMsg:
			return msg
		case tea.BatchMsg:
			queue = append(queue, msg...)
		}
	}
	t.Fatal("no itemsLoadedMsg produced")
	return itemsLoadedMsg{}
}

func TestViewShowsLoadingBeforeFirstResult(t *testing.T) {
	app := testApp()
	assert.Contains(t, app.View(), "Loading knowledge base")
}

func TestViewShowsNoMatches(t *testing.T) {
	app := loadedApp(cardItems())
	app.filter.Query = "zzz-no-such-entry"
	app.applyFilters()

	view := app.View()
	assert.Contains(t, view, "No matches")
	assert.NotContains(t, view, "Go Schedulers")
}

func TestViewRendersVisibleCards(t *testing.T) {
	app := loadedApp(cardItems())
	app = press(app, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := app.View()
	assert.Contains(t, view, "Pod Networking")
	assert.Contains(t, view, "Go Schedulers")
	assert.True(t, strings.Contains(view, "KARDEX") || strings.Contains(view, "█"), "banner present")
}
