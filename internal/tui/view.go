package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// visibleHistory is how many outcome lines fit in the history section.
const visibleHistory = 10

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderCounts(),
		m.renderHistory(),
		m.renderFooter(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("go-respawn %s", m.version))

	lines := []string{
		title,
		labelStyle.Render("strategy ") + valueStyle.Render(m.strategyName),
		labelStyle.Render("binary   ") + valueStyle.Render(m.exePath),
	}
	if m.metricsAddr != "" {
		lines = append(lines,
			labelStyle.Render("metrics  ")+valueStyle.Render("http://"+m.metricsAddr+"/metrics"))
	}

	return headerBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderCounts() string {
	status := labelStyle.Render("  launched ") +
		successStyle.Render(fmt.Sprintf("%d", m.successes)) +
		labelStyle.Render("  failed ") +
		errorStyle.Render(fmt.Sprintf("%d", m.failures))

	if m.spawning {
		status += labelStyle.Render("  spawning...")
	}
	return status
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return labelStyle.Render("\n  no launches yet - press s to spawn a new instance\n")
	}

	start := 0
	if len(m.history) > visibleHistory {
		start = len(m.history) - visibleHistory
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, entry := range m.history[start:] {
		marker := successStyle.Render("✓")
		if !entry.ok {
			marker = errorStyle.Render("✗")
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			labelStyle.Render(entry.at.Format("15:04:05")),
			marker,
			valueStyle.Render(entry.message),
		)
	}
	return b.String()
}

func (m Model) renderFooter() string {
	return footerStyle.Render("s/enter: spawn new instance   q: quit")
}
