// chefgpt TUI - A terminal recipe assistant for Indian cooking.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/chefgpt/chefgpt-tui/internal/config"
	"github.com/chefgpt/chefgpt-tui/internal/llm"
	"github.com/chefgpt/chefgpt-tui/internal/session"
	"github.com/chefgpt/chefgpt-tui/internal/storage"
	"github.com/chefgpt/chefgpt-tui/internal/ui/components"
	"github.com/chefgpt/chefgpt-tui/internal/ui/home"
	"github.com/chefgpt/chefgpt-tui/internal/ui/ingredients"
	"github.com/chefgpt/chefgpt-tui/internal/ui/recipes"
	"github.com/chefgpt/chefgpt-tui/internal/ui/savedchats"
	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			fmt.Printf("chefgpt %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "chefgpt requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme := styles.NewTheme(cfg.UI.Theme)

	chatStore := storage.NewChatStore(cfg.DataDir)
	recipeStore := storage.NewRecipeStore(cfg.DataDir)
	sess, err := session.New(chatStore, recipeStore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	watcher, err := storage.NewWatcher(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := watcher.Watch(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()
	sess.SetPersistHook(watcher.MarkLocalWrite)

	client := llm.NewClient(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
	})

	m := NewModel(theme, cfg, sess, watcher, client)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running chefgpt: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// fileChangedMsg reports an external change to one of the data files.
type fileChangedMsg struct {
	event storage.ChangeEvent
}

// pageModel is the contract every page satisfies.
type pageModel interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Focus() tea.Cmd
	Blur()
}

// Model is the root Bubble Tea model: sidebar, active page, error banner,
// and status bar.
type Model struct {
	theme *styles.Theme
	cfg   *config.Config
	sess  *session.Session

	watcher *storage.Watcher

	sidebar   *components.Sidebar
	statusBar *components.StatusBar
	banner    *components.ErrorBanner

	homePage        *home.Model
	recipesPage     *recipes.Model
	savedChatsPage  *savedchats.Model
	ingredientsPage *ingredients.Model

	width  int
	height int
}

// NewModel creates the application model with the sidebar focused.
func NewModel(theme *styles.Theme, cfg *config.Config, sess *session.Session, watcher *storage.Watcher, client *llm.Client) *Model {
	statusBar := components.NewStatusBar(theme)
	statusBar.ModelName = client.ModelID()

	sidebar := components.NewSidebar(theme)
	sidebar.Focus()

	return &Model{
		theme:           theme,
		cfg:             cfg,
		sess:            sess,
		watcher:         watcher,
		sidebar:         sidebar,
		statusBar:       statusBar,
		banner:          components.NewErrorBanner(theme),
		homePage:        home.New(theme, sess, client),
		recipesPage:     recipes.New(theme, sess),
		savedChatsPage:  savedchats.New(theme, sess),
		ingredientsPage: ingredients.New(theme),
	}
}

// pages returns every page in sidebar order.
func (m *Model) pages() []pageModel {
	return []pageModel{m.homePage, m.recipesPage, m.savedChatsPage, m.ingredientsPage}
}

// activePage returns the page selected in the sidebar.
func (m *Model) activePage() pageModel {
	return m.pages()[m.sidebar.Active()]
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.homePage.Init(),
		m.listenForChanges(),
	)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case components.PageSelectedMsg:
		return m, m.switchPage(msg.Page)

	case components.ErrorMsg:
		m.banner.Show(msg.Err.Error())
		m.statusBar.Status = components.StatusError
		return m, nil

	case home.GeneratingMsg:
		if msg.Active {
			m.statusBar.Status = components.StatusGenerating
		} else {
			m.statusBar.Status = components.StatusReady
			m.savedChatsPage.Refresh()
		}
		return m, nil

	case savedchats.ChatClearedMsg:
		// Any turn still in flight belongs to the discarded transcript.
		m.homePage.InvalidateTurn()
		m.homePage.Refresh()
		m.statusBar.Status = components.StatusReady
		return m, nil

	case fileChangedMsg:
		return m, tea.Batch(m.handleFileChange(msg.event), m.listenForChanges())
	}

	// Async page messages (turn results, spinner ticks, blinks) are routed
	// to every page; each ignores what it does not own.
	var cmds []tea.Cmd
	for _, page := range m.pages() {
		if cmd := page.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// handleKeyPress processes keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Esc dismisses the banner first, then returns focus to the sidebar.
		if m.banner.Visible() {
			m.banner.Clear()
			m.statusBar.Status = components.StatusReady
			return m, nil
		}
		m.activePage().Blur()
		m.sidebar.Focus()
		return m, nil
	}

	if m.sidebar.Focused() {
		switch msg.String() {
		case "1", "2", "3", "4":
			page := components.Pages[int(msg.String()[0]-'1')]
			return m, m.switchPage(page)
		case "tab":
			m.sidebar.Blur()
			return m, m.activePage().Focus()
		}
		return m, m.sidebar.Update(msg)
	}

	return m, m.activePage().Update(msg)
}

// switchPage activates a page and moves keyboard focus into it.
func (m *Model) switchPage(page components.Page) tea.Cmd {
	m.activePage().Blur()
	m.sidebar.SetActive(page)
	m.sidebar.Blur()

	target := m.activePage()
	m.refreshPage(page)
	return target.Focus()
}

// refreshPage re-reads session state for pages that display it.
func (m *Model) refreshPage(page components.Page) {
	switch page {
	case components.PageHome:
		m.homePage.Refresh()
	case components.PageRecipes:
		m.recipesPage.Refresh()
	case components.PageSavedChats:
		m.savedChatsPage.Refresh()
	}
}

// resize propagates new dimensions to every component.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	// One header row, one status row, one banner row.
	contentHeight := height - 3
	if contentHeight < 5 {
		contentHeight = 5
	}
	sidebarWidth := m.theme.SidebarWidth()
	pageWidth := width - sidebarWidth - 2
	if pageWidth < 20 {
		pageWidth = 20
	}

	m.sidebar.SetSize(sidebarWidth, contentHeight-2)
	for _, page := range m.pages() {
		page.SetSize(pageWidth, contentHeight-2)
	}
	m.statusBar.SetWidth(width)
	m.banner.SetWidth(width)
}

// =============================================================================
// DATA FILE WATCHING
// =============================================================================

// listenForChanges waits for the next external data-file change. The command
// re-arms itself after every event.
func (m *Model) listenForChanges() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.watcher.Events()
		if !ok {
			return nil
		}
		return fileChangedMsg{event: event}
	}
}

// handleFileChange reloads the changed file and refreshes the pages that
// display it.
func (m *Model) handleFileChange(event storage.ChangeEvent) tea.Cmd {
	switch event.File {
	case storage.ChatHistoryFile:
		if err := m.sess.ReloadChat(); err != nil {
			return func() tea.Msg { return components.ErrorMsg{Err: err} }
		}
		m.homePage.Refresh()
		m.savedChatsPage.Refresh()

	case storage.SavedRecipesFile:
		if err := m.sess.ReloadRecipes(); err != nil {
			return func() tea.Msg { return components.ErrorMsg{Err: err} }
		}
		m.recipesPage.Refresh()
	}
	return nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the application.
func (m *Model) View() string {
	header := m.theme.Header.Width(m.width).Render("Chef-GPT - your Indian cuisine assistant")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.activePage().View())

	banner := ""
	if m.banner.Visible() {
		banner = m.banner.View() + "\n"
	}

	return header + "\n" + body + "\n" + banner + m.statusBar.View()
}
