package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robbiew/menucfg/internal/editor"
	"github.com/robbiew/menucfg/internal/menu"
)

// ============================================================================
// View Rendering
// ============================================================================

// View renders the four panes: header with breadcrumb, the field list,
// the status line, and contextual key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.ctrl.Snapshot()

	width := m.screenWidth
	if width < 40 {
		width = 80
	}

	sections := []string{
		m.renderHeader(snap, width),
		m.renderFields(snap, width),
		m.renderStatus(snap, width),
		m.renderHelp(snap, width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(snap editor.ViewState, width int) string {
	title := " menucfg "
	if m.path != "" {
		title = " menucfg - " + m.path + " "
	}
	crumb := strings.Join(snap.Breadcrumb, " > ")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Width(width).Render(title),
		breadcrumbStyle.Render(crumb),
	)
}

func (m Model) renderFields(snap editor.ViewState, width int) string {
	title := paneTitleStyle.Render("Settings")
	if snap.IsSequence {
		title = paneTitleStyle.Render(fmt.Sprintf("Settings (%d elements)", len(snap.Fields)))
	}

	height := m.screenHeight
	if height <= 0 {
		height = 24
	}
	// header, pane frames, status and help take the rest of the screen
	maxRows := height - 12
	if maxRows < 5 {
		maxRows = 5
	}
	start, end := fieldWindow(snap.Fields, maxRows)

	rows := make([]string, 0, maxRows+3)
	rows = append(rows, title)
	if len(snap.Fields) == 0 {
		rows = append(rows, emptyStyle.Render("(empty)"))
	}
	if start > 0 {
		rows = append(rows, emptyStyle.Render(fmt.Sprintf("   ... %d above", start)))
	}
	for _, f := range snap.Fields[start:end] {
		rows = append(rows, renderFieldRow(f))
	}
	if end < len(snap.Fields) {
		rows = append(rows, emptyStyle.Render(fmt.Sprintf("   ... %d below", len(snap.Fields)-end)))
	}

	return paneStyle.Width(width - 2).Render(strings.Join(rows, "\n"))
}

// fieldWindow clips the field list to at most max rows while keeping
// the selected row visible.
func fieldWindow(fields []editor.FieldRow, max int) (int, int) {
	if len(fields) <= max {
		return 0, len(fields)
	}
	sel := 0
	for i, f := range fields {
		if f.Selected {
			sel = i
			break
		}
	}
	start := sel - max/2
	if start < 0 {
		start = 0
	}
	if start > len(fields)-max {
		start = len(fields) - max
	}
	return start, start + max
}

// renderFieldRow formats one field as "name: value" with a trailing
// marker for submenus and sequences.
func renderFieldRow(f editor.FieldRow) string {
	indicator := ""
	switch f.Kind.Kind {
	case menu.KindSubmenu:
		indicator = " >"
	case menu.KindSequence:
		indicator = " []"
	case menu.KindOptional:
		if f.Kind.Elem.Kind == menu.KindSubmenu && f.Value != menu.Placeholder {
			indicator = " >"
		}
	}

	row := fmt.Sprintf("%s: %s%s", f.Name, f.Value, indicator)
	if f.Selected {
		return selectedRowStyle.Render(">> " + row)
	}
	return rowStyle.Render("   " + row)
}

func (m Model) renderStatus(snap editor.ViewState, width int) string {
	var line string
	switch snap.Status {
	case editor.StatusEditing:
		line = statusEditStyle.Render("Editing: ") + renderEditBuffer(snap.Edit)
	default:
		line = statusReadyStyle.Render("Ready")
	}

	if m.message != "" && time.Since(m.messageTime) < 3*time.Second {
		style := noticeOKStyle
		if m.messageErr {
			style = noticeErrorStyle
		}
		line += "  " + style.Render(m.message)
	}

	return paneStyle.Width(width - 2).Render(line)
}

// renderEditBuffer shows the session buffer with a block cursor and the
// expected primitive type.
func renderEditBuffer(edit *editor.EditState) string {
	if edit == nil {
		return ""
	}

	runes := []rune(edit.Buffer)
	hint := typeHintStyle.Render(" (" + edit.Type.String() + ")")

	if edit.Cursor >= len(runes) {
		return string(runes) + cursorStyle.Render(" ") + hint
	}
	before := string(runes[:edit.Cursor])
	under := string(runes[edit.Cursor])
	after := string(runes[edit.Cursor+1:])
	return before + cursorStyle.Render(under) + after + hint
}

func (m Model) renderHelp(snap editor.ViewState, width int) string {
	var keys help.KeyMap
	switch {
	case snap.Status == editor.StatusEditing:
		keys = m.editKeys
	case snap.IsSequence:
		keys = seqKeyMap{m.navKeys}
	default:
		keys = m.navKeys
	}

	return paneStyle.Width(width - 2).Render(m.help.View(keys))
}

// RunEditorTUI opens the interactive settings editor over the given
// controller. path is where save writes; empty disables saving.
func RunEditorTUI(ctrl *editor.Controller, path string) error {
	p := tea.NewProgram(newModel(ctrl, path), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
