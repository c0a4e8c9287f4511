package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/billtab/internal/cli"
	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/money"
	"github.com/theirongolddev/billtab/internal/tui/components"
	"github.com/theirongolddev/billtab/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	quickFieldBalance = iota
	quickFieldPurchase
	quickFieldCount // sentinel
)

// quickState tracks the quick calculator tab state.
type quickState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func newFieldInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 20
	ti.Placeholder = placeholder
	ti.SetValue(value)
	return ti
}

func (a App) updateQuickTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down", "tab":
		if a.quick.cursor < quickFieldCount-1 {
			a.quick.cursor++
		}
	case "k", "up":
		if a.quick.cursor > 0 {
			a.quick.cursor--
		}
	case "enter":
		return a.quickStartEdit()
	}
	return a, nil
}

func (a App) quickStartEdit() (tea.Model, tea.Cmd) {
	current := a.balance
	if a.quick.cursor == quickFieldPurchase {
		current = a.purchase
	}

	value := ""
	if current != 0 {
		value = current.Format()
	}
	ti := newFieldInput("0.00", value)
	ti.Focus()

	a.quick.editing = true
	a.quick.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateQuickInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		amt, _ := money.Parse(a.quick.input.Value())
		switch a.quick.cursor {
		case quickFieldBalance:
			a.balance = amt
		case quickFieldPurchase:
			a.purchase = amt
		}
		a.quick.editing = false
		a.recompute()
		return a, nil
	case "esc":
		a.quick.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.quick.input, cmd = a.quick.input.Update(msg)
	return a, cmd
}

func coverageColor(s model.CoverageStatus) lipgloss.Color {
	if s == model.CoverageCovered {
		return theme.Active.Green
	}
	return theme.Active.Red
}

func affordabilityColor(s model.AffordabilityStatus) lipgloss.Color {
	switch s {
	case model.AffordabilityOK:
		return theme.Active.Green
	case model.AffordabilityCaution:
		return theme.Active.Orange
	default:
		return theme.Active.Red
	}
}

func (a App) renderQuickTab(cw int) string {
	t := theme.Active
	m := a.metrics

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	// Scenario input card
	type field struct {
		label string
		value money.Amount
	}
	fields := []field{
		{"Current Balance", a.balance},
		{"Purchase Amount", a.purchase},
	}

	var inputBody strings.Builder
	for i, f := range fields {
		if a.quick.editing && i == a.quick.cursor {
			inputBody.WriteString(markerStyle.Render("▸ "))
			inputBody.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-17s ", f.label)))
			inputBody.WriteString(a.quick.input.View())
			inputBody.WriteString("\n")
			continue
		}
		if i == a.quick.cursor {
			inputBody.WriteString(markerStyle.Render("▸ "))
			inputBody.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-17s ", f.label+":")))
			inputBody.WriteString(selectedStyle.Render(cli.FormatMoney(f.value)))
		} else {
			inputBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			inputBody.WriteString(labelStyle.Render(fmt.Sprintf("%-17s ", f.label+":")))
			inputBody.WriteString(valueStyle.Render(cli.FormatMoney(f.value)))
		}
		inputBody.WriteString("\n")
	}
	inputBody.WriteString("\n")
	inputBody.WriteString(labelStyle.Render("[j/k] select  [Enter] edit  [Esc] cancel"))

	// Metric cards
	metrics := []struct{ Label, Value, Note string }{
		{"Total Unpaid", cli.FormatMoney(m.TotalUnpaid), fmt.Sprintf("%d bills tracked", len(a.bills))},
		{"After Bills", cli.FormatMoney(m.ProjectedBalance), "balance minus unpaid"},
		{"After Purchase", cli.FormatMoney(m.AfterPurchase), "if you buy it"},
	}

	// Status cards
	widths := components.LayoutRow(cw, 2)
	statusRow := components.CardRow([]string{
		components.StatusCard("Bill Coverage", cli.CoverageLabel(m.Coverage), coverageColor(m.Coverage), widths[0]),
		components.StatusCard("Purchase Verdict", cli.AffordabilityLabel(m.Affordability), affordabilityColor(m.Affordability), widths[1]),
	})

	// Cadence card
	var cadence strings.Builder
	cadence.WriteString(labelStyle.Render("Due by the 1st:   ") + valueStyle.Render(cli.FormatMoney(m.Cadence.Early)))
	cadence.WriteString("\n")
	cadence.WriteString(labelStyle.Render("Due by the 15th:  ") + valueStyle.Render(cli.FormatMoney(m.Cadence.Late)))

	var b strings.Builder
	b.WriteString(components.ContentCard("Quick Calculator", inputBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")
	b.WriteString(statusRow)
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Unpaid by Cadence", cadence.String(), cw))

	return b.String()
}
