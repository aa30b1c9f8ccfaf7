package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/kardex/internal/cache"
	"github.com/gravitrone/kardex/internal/feed"
	"github.com/gravitrone/kardex/internal/ui/components"
	"github.com/gravitrone/kardex/internal/view"
)

// --- Messages ---

type itemsLoadedMsg struct {
	seq    int
	result feed.Result
}

type refreshTickMsg struct{}

// --- App Model ---

// App is the root TUI model: one card stack over the canonical collection,
// with search, category, and tag filters derived per keystroke.
type App struct {
	loader   *feed.Loader
	store    *cache.Store
	interval time.Duration

	width  int
	height int

	items       []feed.Item
	visible     []feed.Item
	lastUpdated time.Time
	loaded      bool
	loading     bool
	loadSeq     int
	cancelLoad  context.CancelFunc
	errText     string

	filter      view.Filter
	searching   bool
	categories  []string
	categoryIdx int

	tagPicking bool
	tagOptions []string
	tagList    *components.List

	list  *components.List
	spin  spinner.Model
	theme Theme
}

// NewApp creates the root application model. store may be nil (no
// persistence); interval <= 0 disables the background refresh timer.
func NewApp(loader *feed.Loader, store *cache.Store, interval time.Duration) App {
	dark := store != nil && store.DarkMode()
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return App{
		loader:     loader,
		store:      store,
		interval:   interval,
		categories: []string{view.CategoryAll},
		filter:     view.Filter{Category: view.CategoryAll},
		list:       components.NewList(4),
		tagList:    components.NewList(8),
		spin:       sp,
		theme:      ThemeFor(dark),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.spin.Tick,
		func() tea.Msg { return refreshTickMsg{} },
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetPageSize(cardPageSize(msg.Height))
		return a, nil

	case refreshTickMsg:
		cmd := a.startLoad()
		if a.interval > 0 {
			return a, tea.Batch(cmd, a.scheduleRefresh())
		}
		return a, cmd

	case itemsLoadedMsg:
		// A newer load is outstanding; this result is superseded.
		if msg.seq != a.loadSeq {
			return a, nil
		}
		a.loading = false
		a.loaded = true
		a.items = msg.result.Items
		a.lastUpdated = msg.result.LastUpdated
		a.errText = msg.result.Message
		a.rebuildCategories()
		a.applyFilters()
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKeys(msg)
	}
	return a, nil
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.tagPicking {
		return a.handleTagPickerKeys(msg)
	}
	if a.searching {
		return a.handleSearchKeys(msg)
	}

	switch {
	case isQuit(msg):
		if a.cancelLoad != nil {
			a.cancelLoad()
		}
		return a, tea.Quit
	case isKey(msg, "/"):
		a.searching = true
		return a, nil
	case isBack(msg):
		if a.filter.Query != "" || a.filter.Tag != "" {
			a.filter.Query = ""
			a.filter.Tag = ""
			a.applyFilters()
		}
		return a, nil
	case isKey(msg, "r"):
		return a, a.startLoad()
	case isKey(msg, "d"):
		a.theme = ThemeFor(!a.theme.Dark)
		if a.store != nil {
			_ = a.store.SaveDarkMode(a.theme.Dark)
		}
		return a, nil
	case isKey(msg, "t"):
		a.openTagPicker()
		return a, nil
	case isKey(msg, "left"):
		a.cycleCategory(-1)
		return a, nil
	case isKey(msg, "right"):
		a.cycleCategory(1)
		return a, nil
	case isDown(msg):
		a.list.Down()
		return a, nil
	case isUp(msg):
		a.list.Up()
		return a, nil
	case isEnter(msg), isKey(msg, "o"):
		if item, ok := a.selectedItem(); ok && item.Link != "" {
			return a, openLinkCmd(item.Link)
		}
		return a, nil
	}
	return a, nil
}

func (a App) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.searching = false
		a.filter.Query = ""
		a.applyFilters()
	case isEnter(msg):
		a.searching = false
	case isKey(msg, "backspace"):
		if q := []rune(a.filter.Query); len(q) > 0 {
			a.filter.Query = string(q[:len(q)-1])
			a.applyFilters()
		}
	case isKey(msg, "ctrl+u"):
		a.filter.Query = ""
		a.applyFilters()
	case isDown(msg):
		a.list.Down()
	case isUp(msg):
		a.list.Up()
	case msg.Type == tea.KeyRunes:
		a.filter.Query += string(msg.Runes)
		a.applyFilters()
	case msg.String() == " ":
		a.filter.Query += " "
		a.applyFilters()
	}
	return a, nil
}

func (a App) handleTagPickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg), isKey(msg, "t"):
		a.tagPicking = false
	case isDown(msg):
		a.tagList.Down()
	case isUp(msg):
		a.tagList.Up()
	case isEnter(msg):
		if idx := a.tagList.Selected(); idx >= 0 && idx < len(a.tagOptions) {
			a.filter.Tag = view.ToggleTag(a.filter.Tag, a.tagOptions[idx])
			a.applyFilters()
		}
		a.tagPicking = false
	}
	return a, nil
}

func (a App) View() string {
	banner := RenderBanner(a.theme)
	filterLine := components.Indent(a.renderFilterLine(), 2)

	var content string
	switch {
	case a.tagPicking:
		content = components.Indent(a.renderTagPicker(), 1)
	case !a.loaded && a.errText == "":
		content = components.Indent(components.Box(a.spin.View()+" "+a.theme.Muted.Render("Loading knowledge base..."), a.width), 1)
	case len(a.items) > 0 && len(a.visible) == 0:
		content = components.Indent(components.TitledBox("Cards", a.theme.Muted.Render("No matches for the current filters."), a.width), 1)
	default:
		content = components.Indent(renderCardStack(a.visible, a.list, a.theme, a.filter.Tag, a.width), 1)
	}

	feedback := ""
	if a.errText != "" {
		feedback = "\n" + components.Indent(components.ErrorBox("Feed", a.errText, a.width), 1)
	}

	hints := components.StatusBar(a.statusHints(), a.width)

	return fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s", banner, filterLine, content, feedback, hints)
}

// --- Rendering ---

func (a App) renderFilterLine() string {
	var parts []string

	query := components.SanitizeOneLine(a.filter.Query)
	if a.searching {
		parts = append(parts, a.theme.Selected.Render("Search: ")+a.theme.Normal.Render(query)+a.theme.Accent.Render("█"))
	} else if query != "" {
		parts = append(parts, a.theme.Muted.Render("Search: ")+a.theme.Normal.Render(query))
	}

	category := a.filter.Category
	if category == "" {
		category = view.CategoryAll
	}
	parts = append(parts, a.theme.Muted.Render("Category: ")+a.theme.Normal.Render("‹ "+category+" ›"))

	if a.filter.Tag != "" {
		parts = append(parts, a.theme.Muted.Render("Tag: ")+a.theme.ChipActive.Render("["+a.filter.Tag+"]"))
	}

	if a.loading && a.loaded {
		parts = append(parts, a.theme.Muted.Render("refreshing..."))
	} else if !a.lastUpdated.IsZero() {
		parts = append(parts, a.theme.Muted.Render("updated "+a.lastUpdated.Format("15:04")))
	}

	return strings.Join(parts, lipgloss.NewStyle().Render("   "))
}

func (a App) renderTagPicker() string {
	if len(a.tagOptions) == 0 {
		return components.TitledBox("Filter by Tag", a.theme.Muted.Render("No tags in the current collection."), a.width)
	}

	var b strings.Builder
	start, end := a.tagList.Window()
	for i := start; i < end; i++ {
		tag := a.tagOptions[i]
		label := tag
		if tag == a.filter.Tag {
			label += " (active)"
		}
		if i == a.tagList.Selected() {
			b.WriteString(a.theme.Selected.Render("  > " + label))
		} else {
			b.WriteString(a.theme.Normal.Render("    " + label))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return components.TitledBox("Filter by Tag", b.String(), a.width)
}

func (a App) statusHints() []string {
	if a.tagPicking {
		return []string{
			components.Hint("↑/↓", "Scroll"),
			components.Hint("enter", "Toggle"),
			components.Hint("esc", "Cancel"),
		}
	}
	if a.searching {
		return []string{
			components.Hint("enter", "Apply"),
			components.Hint("esc", "Clear"),
			components.Hint("↑/↓", "Scroll"),
		}
	}
	return []string{
		components.Hint("↑/↓", "Scroll"),
		components.Hint("←/→", "Category"),
		components.Hint("/", "Search"),
		components.Hint("t", "Tag"),
		components.Hint("o", "Open"),
		components.Hint("r", "Refresh"),
		components.Hint("d", "Theme"),
		components.Hint("q", "Quit"),
	}
}

// --- State Transitions ---

func (a *App) startLoad() tea.Cmd {
	if a.cancelLoad != nil {
		a.cancelLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelLoad = cancel

	a.loadSeq++
	seq := a.loadSeq
	a.loading = true

	loader := a.loader
	return tea.Batch(a.spin.Tick, func() tea.Msg {
		return itemsLoadedMsg{seq: seq, result: loader.Load(ctx)}
	})
}

func (a App) scheduleRefresh() tea.Cmd {
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func (a *App) applyFilters() {
	a.visible = view.Visible(a.items, a.filter)
	a.list.SetCount(len(a.visible))
}

func (a *App) rebuildCategories() {
	a.categories = view.Categories(a.items)
	a.categoryIdx = 0
	for i, c := range a.categories {
		if c == a.filter.Category {
			a.categoryIdx = i
			break
		}
	}
	a.filter.Category = a.categories[a.categoryIdx]
}

func (a *App) cycleCategory(step int) {
	if len(a.categories) == 0 {
		return
	}
	a.categoryIdx = (a.categoryIdx + step + len(a.categories)) % len(a.categories)
	a.filter.Category = a.categories[a.categoryIdx]
	a.applyFilters()
}

func (a *App) openTagPicker() {
	a.tagOptions = view.Tags(a.items)
	a.tagList.SetCount(len(a.tagOptions))
	a.tagPicking = true
}

func (a App) selectedItem() (feed.Item, bool) {
	idx := a.list.Selected()
	if idx < 0 || idx >= len(a.visible) {
		return feed.Item{}, false
	}
	return a.visible[idx], true
}

func cardPageSize(height int) int {
	// Banner, filter line, status bar, and card chrome eat roughly 16 rows;
	// each card takes about 6.
	size := (height - 16) / 6
	if size < 2 {
		size = 2
	}
	return size
}
