package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

const (
	barGlyph   = "█"
	minBarArea = 10
)

// View shows bars in the terminal until the user quits.
func View(bars Bars, style Style) error {
	if bars.Len() == 0 {
		return fmt.Errorf("no bars to show")
	}
	_, err := tea.NewProgram(newViewModel(bars, style), tea.WithAltScreen()).Run()
	return err
}

type viewModel struct {
	bars     Bars
	style    Style
	viewport viewport.Model
	ready    bool
}

func newViewModel(bars Bars, style Style) viewModel {
	return viewModel{bars: bars, style: style}
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := msg.Height - lipgloss.Height(m.header()) - lipgloss.Height(m.footer())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(renderBars(m.bars, msg.Width))
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.header() + "\n" + m.viewport.View() + "\n" + m.footer()
}

func (m viewModel) header() string {
	title := titleStyle.Render(m.style.Title)
	axes := axisStyle.Render(fmt.Sprintf("x: %s   y: %s", m.style.XLabel, m.style.YLabel))
	return title + "\n" + axes
}

func (m viewModel) footer() string {
	legend := m.style.Legend
	if legend != "" {
		legend = barStyle.Render(barGlyph) + " " + legend + "   "
	}
	return axisStyle.Render(legend + "q: quit  ↑/↓: scroll")
}

// renderBars draws one horizontal bar per value, scaled so the largest
// magnitude fills the bar area left over within width.
func renderBars(bars Bars, width int) string {
	labelWidth := 0
	values := make([]string, bars.Len())
	valueWidth := 0
	maxAbs := 0.0
	for i, v := range bars.Values {
		labelWidth = max(labelWidth, lipgloss.Width(bars.Labels[i]))
		values[i] = fmt.Sprintf("%.3f", v)
		valueWidth = max(valueWidth, len(values[i]))
		maxAbs = max(maxAbs, math.Abs(v))
	}
	area := max(width-labelWidth-valueWidth-4, minBarArea)

	var b strings.Builder
	for i, v := range bars.Values {
		n := 0
		if maxAbs > 0 && v > 0 {
			n = int(math.Round(v / maxAbs * float64(area)))
		}
		label := fmt.Sprintf("%*s", labelWidth, bars.Labels[i])
		fmt.Fprintf(&b, "%s │%s %s\n",
			labelStyle.Render(label),
			barStyle.Render(strings.Repeat(barGlyph, n)),
			values[i])
	}
	return b.String()
}
