package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/galleypress/galley/internal/layout"
	"github.com/galleypress/galley/internal/paginator"
	"github.com/galleypress/galley/internal/preflight"
)

var (
	pageFrameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(1, 2).
			Width(56)

	pageLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	forcedLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF"))

	majorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F38BA8"))

	minorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF"))

	cleanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1"))
)

// renderPreview draws each page in a rounded frame with a footer label.
func renderPreview(pages []paginator.Page, format layout.Format, limit int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d pages, %s, %d chars per page\n", len(pages), format.Description(), limit))

	for i, p := range pages {
		label := pageLabelStyle.Render(fmt.Sprintf("page %d of %d", i+1, len(pages)))
		if p.Forced {
			label += forcedLabelStyle.Render("  (forced break)")
		}
		sb.WriteString(pageFrameStyle.Render(p.Text))
		sb.WriteString("\n")
		sb.WriteString(label)
		sb.WriteString("\n")
	}
	return sb.String()
}

func severityStyle(s preflight.Severity) lipgloss.Style {
	switch s {
	case preflight.SeverityMajor:
		return majorStyle
	case preflight.SeverityMinor:
		return minorStyle
	default:
		return cleanStyle
	}
}
