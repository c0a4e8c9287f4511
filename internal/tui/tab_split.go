package tui

import (
	"strings"

	"github.com/theirongolddev/billtab/internal/cli"
	"github.com/theirongolddev/billtab/internal/money"
	"github.com/theirongolddev/billtab/internal/tui/components"
	"github.com/theirongolddev/billtab/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// splitState tracks the income split tab state.
type splitState struct {
	editing bool
	input   textinput.Model
}

func (a App) updateSplitTab(key string) (tea.Model, tea.Cmd) {
	if key == "enter" {
		value := ""
		if a.income != 0 {
			value = a.income.Format()
		}
		ti := newFieldInput("0.00", value)
		ti.Focus()
		a.splitTab.editing = true
		a.splitTab.input = ti
		return a, ti.Cursor.BlinkCmd()
	}
	return a, nil
}

func (a App) updateSplitInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		amt, _ := money.Parse(a.splitTab.input.Value())
		a.income = amt
		a.splitTab.editing = false
		a.recompute()
		return a, nil
	case "esc":
		a.splitTab.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.splitTab.input, cmd = a.splitTab.input.Update(msg)
	return a, cmd
}

func (a App) renderSplitTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)

	var inputBody strings.Builder
	if a.splitTab.editing {
		inputBody.WriteString(markerStyle.Render("▸ "))
		inputBody.WriteString(selectedLabelStyle.Render("Monthly Income   "))
		inputBody.WriteString(a.splitTab.input.View())
	} else {
		inputBody.WriteString(markerStyle.Render("▸ "))
		inputBody.WriteString(selectedLabelStyle.Render("Monthly Income:  "))
		inputBody.WriteString(valueStyle.Render(cli.FormatMoney(a.income)))
	}
	inputBody.WriteString("\n\n")
	inputBody.WriteString(labelStyle.Render("[Enter] edit  [Esc] cancel"))

	cards := []struct{ Label, Value, Note string }{
		{"Needs 50%", cli.FormatMoney(a.split.Needs), "rent, bills, groceries"},
		{"Wants 30%", cli.FormatMoney(a.split.Wants), "fun money"},
		{"Savings 20%", cli.FormatMoney(a.split.Savings), "pay yourself first"},
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("50 / 30 / 20 Split", inputBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow(cards, cw))

	return b.String()
}
