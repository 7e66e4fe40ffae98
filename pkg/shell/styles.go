package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles
type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	deleted lipgloss.Style
	notice  lipgloss.Style
	header  lipgloss.Style
	empty   lipgloss.Style
	border  lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		plain := r.NewStyle()
		return styles{
			success: plain,
			failure: plain,
			deleted: plain,
			notice:  plain,
			header:  plain,
			empty:   plain,
			border:  plain,
		}
	}

	return styles{
		success: r.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		deleted: r.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
		header:  r.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true),
		empty:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
		border:  r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}
