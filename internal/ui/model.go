package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/debounce"
	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/ports"
	"github.com/hookhub/hookhub/internal/services"
	"github.com/hookhub/hookhub/internal/theme"
)

const (
	communityLine = "Built for the Claude Code community"
	pageTitle     = "Available Hooks"

	defaultHeight = 24
	defaultWidth  = 80
	minListHeight = 3
)

type uiState int

const (
	stateList uiState = iota
	stateCommandPalette
	stateDetail
	stateHelp
	stateThemePicker
)

// Options configures a Model
type Options struct {
	Catalog         *services.CatalogService
	Category        string        // Initially selected category; empty means All
	Clipboard       ports.Clipboard
	DebounceDelay   time.Duration // Search debounce; <= 0 uses debounce.DefaultDelay
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	Opener          ports.URLOpener    // nil disables opening links
	Query           string             // Initial committed search query
	Renderer        *lipgloss.Renderer // nil uses the default renderer
	Theme           theme.Mode
}

// Model is the catalog browser. One Model serves one terminal; the
// catalog it reads from is shared and never modified.
type Model struct {
	catalog        *services.CatalogService
	categoryBar    *CategoryBar
	clipboard      ports.Clipboard
	commandPalette *CommandPalette
	darkBackground bool
	devMode        bool
	errorManager   *ErrorManager
	filter         domain.FilterState
	filterApplied  bool
	height         int
	helpScreen     *Dialog
	hookDetail     *HookDetail
	hookList       *HookList
	keys           KeyMap
	notice         string
	opener         ports.URLOpener
	renderer       *lipgloss.Renderer
	searchBar      *SearchBar
	state          uiState
	styles         theme.Styles
	themeForm      *Dialog
	themeMode      theme.Mode
	width          int
}

// NewModel creates the browser with "All" selected and an empty query
// unless opts says otherwise
func NewModel(opts Options) *Model {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	mode := opts.Theme
	if mode == "" {
		mode = theme.ModeSystem
	}
	errorClearDelay := opts.ErrorClearDelay
	if errorClearDelay <= 0 {
		errorClearDelay = time.Duration(config.DefaultErrorClearDelay) * time.Second
	}

	dark := renderer.HasDarkBackground()
	styles := theme.NewStyles(renderer, mode.Resolve(dark))

	m := &Model{
		catalog:        opts.Catalog,
		categoryBar:    NewCategoryBar(opts.Catalog.Categories()),
		clipboard:      opts.Clipboard,
		opener:         opts.Opener,
		darkBackground: dark,
		devMode:        opts.DevMode,
		errorManager:   NewErrorManager(errorClearDelay),
		hookList:       NewHookList(),
		keys:           NewKeyMap(opts.Keys),
		renderer:       renderer,
		searchBar:      NewSearchBar(styles, opts.DebounceDelay),
		state:          stateList,
		styles:         styles,
		themeMode:      mode,
	}

	initial := domain.DefaultFilterState()
	if opts.Category != "" {
		if _, ok := m.categoryBar.Select(opts.Category); ok {
			initial.Category = opts.Category
		} else {
			logging.Logger.Warn("Unknown initial category ignored", "category", opts.Category)
		}
	}
	if opts.Query != "" {
		m.searchBar.Sync(opts.Query)
		initial.Query = opts.Query
	}
	m.applyFilter(initial)

	return m
}

// Filter returns the filter currently applied to the list
func (m *Model) Filter() domain.FilterState {
	return m.filter
}

// VisibleHooks returns the hooks the list currently shows
func (m *Model) VisibleHooks() []domain.Hook {
	return m.hookList.Hooks()
}

// ThemeMode returns the active theme mode
func (m *Model) ThemeMode() theme.Mode {
	return m.themeMode
}

// Close cancels pending search commits. Called on quit and when an SSH
// session ends.
func (m *Model) Close() {
	m.searchBar.Close()
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(AppName)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages handled the same way in every state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case debounce.FiredMsg:
		return m, m.searchBar.Update(msg)
	case QueryCommittedMsg:
		m.applyFilter(domain.FilterState{Category: m.filter.Category, Query: msg.Query})
		return m, nil
	case CategorySelectedMsg:
		m.applyFilter(domain.FilterState{Category: msg.Category, Query: m.filter.Query})
		return m, nil
	case CopyURLMsg:
		return m, m.copyURL(msg.Hook)
	case OpenURLMsg:
		return m, m.openURL(msg.Hook)
	case urlCopiedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to copy repository URL", "url", msg.url, "error", msg.err)
			m.errorManager.SetError(msg.err)
			return m, m.errorManager.ClearAfterDelay()
		}
		return m, m.showNotice("Copied " + msg.url)
	case urlOpenedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to open repository URL", "url", msg.url, "error", msg.err)
			m.errorManager.SetError(msg.err)
			return m, m.errorManager.ClearAfterDelay()
		}
		return m, m.showNotice("Opened " + msg.url)
	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateDetail:
		return m.updateDetail(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateThemePicker:
		return m.updateThemePicker(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		m.Close()
		return m, tea.Quit
	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys, m.styles), m.devMode, m.styles)
		m.state = stateHelp
		return m, m.openDialog(m.helpScreen)
	case CycleThemeMsg:
		m.setTheme(m.themeMode.Next())
		return m, nil
	case PickThemeMsg:
		m.themeForm = NewDialog("Choose Theme", NewThemeForm(m.themeMode), m.devMode, m.styles)
		m.state = stateThemePicker
		return m, m.openDialog(m.themeForm)
	case FocusSearchMsg:
		return m, m.searchBar.Focus()
	case ClearSearchMsg:
		return m, m.searchBar.Clear()
	case NextCategoryMsg:
		return m, m.categoryBar.Next()
	case PrevCategoryMsg:
		return m, m.categoryBar.Prev()
	case CopyURLMsg:
		return m, m.copyURL(msg.Hook)
	case OpenURLMsg:
		return m, m.openURL(msg.Hook)
	case OpenDetailMsg:
		m.hookDetail = NewHookDetail(msg.Hook, &m.keys, m.styles)
		m.hookDetail.Update(tea.WindowSizeMsg{Width: m.viewWidth(), Height: m.viewHeight()})
		m.state = stateDetail
		return m, nil
	case tea.KeyMsg:
		if m.searchBar.Focused() {
			return m.updateSearchKeys(msg)
		}
		return m.updateListKeys(msg)
	}

	// Cursor blinks and other input internals
	return m, m.searchBar.Update(msg)
}

// updateListKeys handles keys while the hook list has focus
func (m *Model) updateListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Application.ForceQuit.Binding):
		return m.updateList(QuitMsg{})
	case key.Matches(msg, m.keys.Application.CommandPalette.Binding):
		return m.openCommandPalette()
	case key.Matches(msg, m.keys.Navigation.Up.Binding):
		m.hookList.Up()
		return m, nil
	case key.Matches(msg, m.keys.Navigation.Down.Binding):
		m.hookList.Down()
		return m, nil
	}

	actions := []struct {
		binding key.Binding
		name    string
	}{
		{m.keys.Application.Help.Binding, "help"},
		{m.keys.Application.Quit.Binding, "quit"},
		{m.keys.Application.ThemeCycle.Binding, "theme_cycle"},
		{m.keys.Application.ThemePick.Binding, "theme_pick"},
		{m.keys.Navigation.ClearSearch.Binding, "clear_search"},
		{m.keys.Navigation.NextCategory.Binding, "next_category"},
		{m.keys.Navigation.PrevCategory.Binding, "prev_category"},
		{m.keys.Navigation.Search.Binding, "search"},
		{m.keys.Hook.CopyURL.Binding, "copy_url"},
		{m.keys.Hook.OpenDetail.Binding, "open_detail"},
		{m.keys.Hook.OpenURL.Binding, "open_url"},
	}

	dispatcher := NewActionDispatcher(m.selectedHook())
	for _, action := range actions {
		if !key.Matches(msg, action.binding) {
			continue
		}
		if actionMsg := dispatcher.Dispatch(*GetKeyDefinition(action.name)); actionMsg != nil {
			return m.updateList(actionMsg)
		}
		return m, nil
	}

	return m, nil
}

// updateSearchKeys handles keys while the search bar has focus. Printable
// keys go to the input; only non-printable bindings act as shortcuts.
func (m *Model) updateSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Application.ForceQuit.Binding):
		return m.updateList(QuitMsg{})
	case msg.Type == tea.KeyEsc:
		if m.searchBar.Value() != "" {
			return m, m.searchBar.Clear()
		}
		m.searchBar.Blur()
		return m, nil
	case msg.Type == tea.KeyEnter, msg.Type == tea.KeyDown:
		m.searchBar.Blur()
		return m, nil
	case msg.Type == tea.KeyTab:
		return m, m.categoryBar.Next()
	case msg.Type == tea.KeyShiftTab:
		return m, m.categoryBar.Prev()
	case msg.Type != tea.KeyRunes && key.Matches(msg, m.keys.Navigation.ClearSearch.Binding):
		return m, m.searchBar.Clear()
	}

	return m, m.searchBar.Update(msg)
}

func (m *Model) openCommandPalette() (tea.Model, tea.Cmd) {
	var hookName string
	if hook := m.selectedHook(); hook != nil {
		hookName = hook.Name
	}
	m.commandPalette = NewCommandPalette(hookName, m.keys, m.styles)
	m.commandPalette.Update(tea.WindowSizeMsg{Width: m.viewWidth(), Height: m.viewHeight()})
	m.state = stateCommandPalette
	return m, m.commandPalette.Init()
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if !m.commandPalette.Completed {
		return m, cmd
	}

	result := m.commandPalette.Result
	m.state = stateList
	m.commandPalette = nil

	if result.Cancelled || result.Action == nil {
		return m, nil
	}

	dispatcher := NewActionDispatcher(m.selectedHook())
	if actionMsg := dispatcher.Dispatch(*result.Action); actionMsg != nil {
		return m.updateList(actionMsg)
	}
	return m, nil
}

func (m *Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.hookDetail.Update(msg)
	if m.hookDetail.Completed {
		m.state = stateList
		m.hookDetail = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateList
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateThemePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.themeForm.Update(msg)
	m.themeForm = updated.(*Dialog)

	if form, ok := m.themeForm.Content().(*ThemeForm); ok && form.Completed {
		if result := form.Result(); !result.Cancelled {
			m.setTheme(result.Mode)
		}
		m.state = stateList
		m.themeForm = nil
		return m, nil
	}

	return m, cmd
}

// openDialog initializes d and sends it the current size
func (m *Model) openDialog(d *Dialog) tea.Cmd {
	initCmd := d.Init()
	_, sizeCmd := d.Update(tea.WindowSizeMsg{Width: m.viewWidth(), Height: m.viewHeight()})
	return tea.Batch(initCmd, sizeCmd)
}

// applyFilter recomputes the visible hooks when the filter changed
func (m *Model) applyFilter(next domain.FilterState) {
	if m.filterApplied && next == m.filter {
		return
	}
	m.filter = next
	m.filterApplied = true
	m.hookList.SetHooks(m.catalog.Filter(next.Category, next.Query))
	logging.Logger.Debug("Filter applied", "category", next.Category, "query", next.Query, "results", m.hookList.Len())
}

func (m *Model) setTheme(mode theme.Mode) {
	m.themeMode = mode
	m.styles = theme.NewStyles(m.renderer, mode.Resolve(m.darkBackground))
	m.searchBar.SetStyles(m.styles)
	logging.Logger.Info("Theme changed", "theme", mode)
}

func (m *Model) selectedHook() *domain.Hook {
	hook, ok := m.hookList.Selected()
	if !ok {
		return nil
	}
	return &hook
}

func (m *Model) copyURL(hook domain.Hook) tea.Cmd {
	clip := m.clipboard
	return func() tea.Msg {
		if hook.RepoURL == "" {
			return urlCopiedMsg{err: fmt.Errorf("hook %s has no repository URL", hook.Name)}
		}
		if clip == nil {
			return urlCopiedMsg{err: errors.New("clipboard is not available"), url: hook.RepoURL}
		}
		if err := clip.WriteAll(hook.RepoURL); err != nil {
			return urlCopiedMsg{err: err, url: hook.RepoURL}
		}
		return urlCopiedMsg{url: hook.RepoURL}
	}
}

func (m *Model) openURL(hook domain.Hook) tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		if hook.RepoURL == "" {
			return urlOpenedMsg{err: fmt.Errorf("hook %s has no repository URL", hook.Name)}
		}
		if opener == nil {
			return urlOpenedMsg{err: errors.New("opening links is not available in this session"), url: hook.RepoURL}
		}
		if err := opener.Open(hook.RepoURL); err != nil {
			return urlOpenedMsg{err: err, url: hook.RepoURL}
		}
		return urlOpenedMsg{url: hook.RepoURL}
	}
}

func (m *Model) showNotice(text string) tea.Cmd {
	m.notice = text
	return tea.Tick(m.errorManager.Delay(), func(time.Time) tea.Msg { return clearNoticeMsg{} })
}

func (m *Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) viewHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}

func (m *Model) View() string {
	switch m.state {
	case stateCommandPalette:
		if m.commandPalette != nil {
			return compositeOverlay(m.listView(), m.commandPalette.View(), m.viewWidth(), m.viewHeight(), m.styles.Dimmed)
		}
	case stateDetail:
		if m.hookDetail != nil {
			return compositeOverlay(m.listView(), m.hookDetail.View(), m.viewWidth(), m.viewHeight(), m.styles.Dimmed)
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateThemePicker:
		if m.themeForm != nil {
			return m.themeForm.View()
		}
	}
	return m.listView()
}

// listView renders the main screen: header, search, tabs, results, footer
func (m *Model) listView() string {
	width, height := m.viewWidth(), m.viewHeight()

	header := renderHeader(m.styles, m.devMode, "")
	search := m.searchBar.View(width)
	tabs := m.categoryBar.View(m.styles, width)
	count := m.styles.Subtitle.Render(pageTitle) +
		m.styles.ResultCount.Render("  "+domain.ResultCountMessage(m.hookList.Len()))
	footer := m.renderFooter(width)
	status := m.renderStatus(width)

	fixed := lipgloss.Height(header) + lipgloss.Height(search) + lipgloss.Height(tabs) +
		2 + lipgloss.Height(footer) + lipgloss.Height(status)
	listHeight := max(height-fixed, minListHeight)

	list := m.hookList.View(m.styles, width, listHeight)
	if n := lipgloss.Height(list); n < listHeight {
		list += strings.Repeat("\n", listHeight-n)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, search, tabs, count, "", list, footer, status)
}

// renderFooter renders the short help, the theme and the community line
func (m *Model) renderFooter(width int) string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, m.styles.FooterKey.Render(h.Key)+" "+m.styles.Footer.Render(h.Desc))
	}
	help := m.styles.Footer.Width(width).Render(strings.Join(parts, m.styles.Footer.Render(" • ")))

	themeLabel := m.styles.Footer.Render(fmt.Sprintf("%s %s theme", m.themeMode.Icon(), m.themeMode))
	return help + "\n" + themeLabel + m.styles.Footer.Render("  ·  "+communityLine)
}

// renderStatus renders the two-line error or notice area
func (m *Model) renderStatus(width int) string {
	switch {
	case m.errorManager.HasError():
		text := formatErrorForDisplay(m.errorManager.GetError(), width)
		if !strings.Contains(text, "\n") {
			text += "\n "
		}
		return m.styles.Error.Render(text)
	case m.notice != "":
		return m.styles.Muted.Render(m.notice) + "\n "
	}
	return " \n "
}
