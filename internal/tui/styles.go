package tui

import "github.com/charmbracelet/lipgloss"

// ============================================================================
// Color Scheme & Styling
// ============================================================================

// Color palette
const (
	ColorPrimary    = "4"  // Blue
	ColorAccent     = "5"  // Magenta
	ColorTextBright = "15" // Bright White
	ColorTextNormal = "7"  // White
	ColorTextDim    = "8"  // Bright Black/Gray
	ColorSuccess    = "2"  // Green
	ColorError      = "1"  // Red
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTextBright)).
			Background(lipgloss.Color(ColorPrimary)).
			Bold(true)

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTextDim)).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorTextDim)).
			Padding(0, 1)

	paneTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorTextBright)).
				Background(lipgloss.Color(ColorAccent)).
				Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTextNormal))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTextDim)).
			Italic(true)

	statusReadyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess))

	statusEditStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true)

	noticeErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorError)).
				Bold(true)

	noticeOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	typeHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTextDim))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(ColorTextBright))
)
