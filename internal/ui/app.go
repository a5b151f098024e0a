// Package ui implements the interactive catalog browser as a Bubble Tea
// program. All domain state lives in the controller; this package only
// translates key events into controller intents and renders the result.
package ui

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"cellar/internal/common"
	"cellar/internal/controller"
	"cellar/internal/export"
	"cellar/internal/model"
	"cellar/internal/service"
)

// screen identifies what the main area shows.
type screen int

const (
	screenBrowse screen = iota
	screenDetail
	screenChat
)

// Model is the root Bubble Tea model.
type Model struct {
	ctrl      *controller.Controller
	sommelier service.Sommelier

	screen        screen
	showWelcome   bool
	welcomeOptOut bool
	showHelp      bool

	cursor      int
	searchInput textinput.Model
	searching   bool
	chatInput   textinput.Model
	chatView    viewport.Model
	typing      spinner.Model

	info  string
	error string

	width  int
	height int

	keys KeyMap
}

// New creates the root model. The sommelier client may be nil; the chat
// panel then reports that the assistant is not configured.
func New(ctrl *controller.Controller, somm service.Sommelier) Model {
	search := textinput.New()
	search.Placeholder = "Search wines..."
	search.CharLimit = 80

	chat := textinput.New()
	chat.Placeholder = "Ask about pairings, regions, etc..."
	chat.CharLimit = 400

	typing := spinner.New()
	typing.Spinner = spinner.Dot

	return Model{
		ctrl:        ctrl,
		sommelier:   somm,
		screen:      screenBrowse,
		showWelcome: ctrl.ShowWelcome(),
		searchInput: search,
		chatInput:   chat,
		chatView:    viewport.New(80, 20),
		typing:      typing,
		keys:        DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chatView.Width = max(40, msg.Width-4)
		m.chatView.Height = max(8, msg.Height-8)
		m.refreshChat()
		return m, nil

	case chatReplyMsg:
		m.ctrl.CompleteSend(ctx, msg.reply, msg.err)
		m.refreshChat()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.error = "Export failed: " + msg.err.Error()
		} else {
			m.info = "Exported " + msg.path
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Awaiting() {
			var cmd tea.Cmd
			m.typing, cmd = m.typing.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		m.info = ""
		m.error = ""

		if m.showWelcome {
			return m.updateWelcome(ctx, msg)
		}
		if m.searching {
			return m.updateSearch(ctx, msg)
		}
		switch m.screen {
		case screenChat:
			return m.updateChat(ctx, msg)
		case screenDetail:
			return m.updateDetail(ctx, msg)
		default:
			return m.updateBrowse(ctx, msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ctrl.CurrentPage())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.ctrl.NextPage(ctx)
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.ctrl.PrevPage(ctx)
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.ctrl.Filter().Search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.CycleType):
		m.ctrl.SetType(ctx, cycle(m.ctrl.Filter().Type, m.ctrl.Store().Types()))
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.CycleCountry):
		m.ctrl.SetCountry(ctx, cycle(m.ctrl.Filter().Country, m.ctrl.Store().Countries()))
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.ToggleView):
		if m.ctrl.ViewMode() == controller.ModeGrid {
			m.ctrl.SetViewMode(ctx, controller.ModeCondensed)
		} else {
			m.ctrl.SetViewMode(ctx, controller.ModeGrid)
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if w, ok := m.wineUnderCursor(); ok {
			m.ctrl.SelectWine(ctx, w.ID)
			m.screen = screenDetail
		}
		return m, nil

	case key.Matches(msg, m.keys.MarkTasted):
		return m.toggleUnderCursor(ctx, model.StatusTasted), nil

	case key.Matches(msg, m.keys.MarkWant):
		return m.toggleUnderCursor(ctx, model.StatusWant), nil

	case key.Matches(msg, m.keys.ExportCSV):
		return m, m.exportCmd(export.FormatCSV)

	case key.Matches(msg, m.keys.ExportJSON):
		return m, m.exportCmd(export.FormatJSON)

	case key.Matches(msg, m.keys.Chat):
		m.screen = screenChat
		m.chatInput.Focus()
		m.refreshChat()
		return m, tea.Batch(textinput.Blink, m.typing.Tick)
	}

	return m, nil
}

func (m Model) updateSearch(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.ctrl.SetSearch(ctx, m.searchInput.Value())
	m.cursor = 0
	return m, cmd
}

func (m Model) updateDetail(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.ctrl.ClearSelection()
		m.screen = screenBrowse
		return m, nil

	case key.Matches(msg, m.keys.MarkTasted):
		if w, ok := m.ctrl.Selected(); ok {
			m.ctrl.ToggleStatus(ctx, w.ID, model.StatusTasted)
		}
		return m, nil

	case key.Matches(msg, m.keys.MarkWant):
		if w, ok := m.ctrl.Selected(); ok {
			m.ctrl.ToggleStatus(ctx, w.ID, model.StatusWant)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateChat(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenBrowse
		m.chatInput.Blur()
		return m, nil

	case "enter":
		if m.sommelier == nil {
			m.error = "No sommelier provider configured; set llm.api_key"
			return m, nil
		}
		prompt, ok := m.ctrl.BeginSend(ctx, m.chatInput.Value())
		if !ok {
			// Empty input, or a request already in flight: dropped.
			return m, nil
		}
		m.chatInput.SetValue("")
		m.refreshChat()
		return m, tea.Batch(m.sendCmd(prompt), m.typing.Tick)

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.chatView, cmd = m.chatView.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) updateWelcome(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d":
		m.welcomeOptOut = !m.welcomeOptOut
		return m, nil
	case "enter", "esc", " ":
		m.ctrl.DismissWelcome(ctx, m.welcomeOptOut)
		m.showWelcome = false
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// sendCmd issues the sommelier request off the event loop. The controller
// has already recorded the user turn and the in-flight guard.
func (m Model) sendCmd(prompt string) tea.Cmd {
	somm := m.sommelier
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		reply, err := somm.Generate(ctx, prompt)
		return chatReplyMsg{reply: reply, err: err}
	}
}

// exportCmd writes the tasting list into the working directory. Encoding
// happens on the event loop via the controller; only the file write runs as
// a command.
func (m Model) exportCmd(format export.Format) tea.Cmd {
	payload, path, err := m.ctrl.Export(context.Background(), format)
	if err != nil {
		if errors.Is(err, common.ErrEmptyLedger) {
			// No entries, no export control.
			return nil
		}
		return func() tea.Msg { return exportDoneMsg{err: err} }
	}
	return func() tea.Msg {
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m Model) wineUnderCursor() (model.Wine, bool) {
	page := m.ctrl.CurrentPage()
	if m.cursor < 0 || m.cursor >= len(page) {
		return model.Wine{}, false
	}
	return page[m.cursor], true
}

func (m Model) toggleUnderCursor(ctx context.Context, status model.TastingStatus) Model {
	if w, ok := m.wineUnderCursor(); ok {
		m.ctrl.ToggleStatus(ctx, w.ID, status)
	}
	return m
}

// cycle advances through All plus the given values, wrapping at the end.
func cycle(current string, values []string) string {
	options := append([]string{"All"}, values...)
	for i, v := range options {
		if v == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
