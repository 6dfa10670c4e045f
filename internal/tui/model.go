// Package tui is the interactive terminal front end over the settings
// controller. The controller owns every piece of menu and edit state;
// the model here only routes keys into controller operations and
// renders the snapshot the controller hands back.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robbiew/menucfg/internal/editor"
)

// Model represents the complete editor UI state.
type Model struct {
	ctrl *editor.Controller
	path string // settings file written by save, "" disables saving

	navKeys  navKeyMap
	editKeys editKeyMap
	help     help.Model

	screenWidth  int
	screenHeight int

	message     string
	messageErr  bool
	messageTime time.Time

	quitting bool
}

func newModel(ctrl *editor.Controller, path string) Model {
	return Model{
		ctrl:     ctrl,
		path:     path,
		navKeys:  defaultNavKeys(),
		editKeys: defaultEditKeys(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.ClearScreen, tea.EnterAltScreen)
}

// ============================================================================
// Update Logic
// ============================================================================

// Update handles all input events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screenWidth = msg.Width
		m.screenHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Global quit handling
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		// While an edit session is open, keys type into the buffer
		if m.ctrl.Editing() {
			return m.handleEditKeys(msg)
		}
		return m.handleNavKeys(msg)
	}

	return m, nil
}

// handleEditKeys processes input while an edit session is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Commit):
		if err := m.ctrl.CommitEdit(); err != nil {
			// session stays open with the buffer intact
			return m.withError(err), nil
		}
		return m.withNotice("Value updated"), nil

	case key.Matches(msg, m.editKeys.Cancel):
		m.ctrl.GoBack()
		return m.withNotice("Edit cancelled"), nil

	case key.Matches(msg, m.editKeys.Left):
		m.ctrl.MoveCursorLeft()
		return m, nil

	case key.Matches(msg, m.editKeys.Right):
		m.ctrl.MoveCursorRight()
		return m, nil

	case key.Matches(msg, m.editKeys.Erase):
		m.ctrl.Backspace()
		return m, nil

	case key.Matches(msg, m.editKeys.Delete):
		m.ctrl.Delete()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.ctrl.InsertRune(r)
		}
	case tea.KeySpace:
		m.ctrl.InsertRune(' ')
	}
	return m, nil
}

// handleNavKeys processes input while navigating the tree.
func (m Model) handleNavKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.navKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.navKeys.Up):
		m.ctrl.SelectPrevious()
		m.message = ""
		return m, nil

	case key.Matches(msg, m.navKeys.Down):
		m.ctrl.SelectNext()
		m.message = ""
		return m, nil

	case key.Matches(msg, m.navKeys.Select):
		if err := m.ctrl.Activate(); err != nil {
			return m.withError(err), nil
		}
		return m, nil

	case key.Matches(msg, m.navKeys.Back):
		if err := m.ctrl.GoBack(); err != nil {
			// backing out of the root view leaves the editor
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.navKeys.Append):
		if err := m.ctrl.AppendElement(); err != nil {
			return m.withError(err), nil
		}
		return m.withNotice("Element added"), nil

	case key.Matches(msg, m.navKeys.Remove):
		if err := m.ctrl.RemoveElement(); err != nil {
			return m.withError(err), nil
		}
		return m.withNotice("Element removed"), nil

	case key.Matches(msg, m.navKeys.Save):
		if m.path == "" {
			return m.withError(errors.New("no settings file to save to")), nil
		}
		if err := m.ctrl.SaveFile(m.path); err != nil {
			return m.withError(err), nil
		}
		return m.withNotice("Saved " + m.path), nil

	case key.Matches(msg, m.navKeys.Reload):
		if m.path == "" {
			return m.withError(errors.New("no settings file to reload from")), nil
		}
		if err := m.ctrl.LoadFile(m.path); err != nil {
			// failed loads leave the current settings untouched
			return m.withError(err), nil
		}
		return m.withNotice("Reloaded " + m.path), nil

	case key.Matches(msg, m.navKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m Model) withNotice(text string) Model {
	m.message = text
	m.messageErr = false
	m.messageTime = time.Now()
	return m
}

func (m Model) withError(err error) Model {
	m.message = err.Error()
	m.messageErr = true
	m.messageTime = time.Now()
	return m
}
