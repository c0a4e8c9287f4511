package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/billtab/internal/cli"
	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/tui/components"
	"github.com/theirongolddev/billtab/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	billColName = iota
	billColDate
	billColAmount
	billColCount // sentinel
)

// billsState tracks the bills table state.
type billsState struct {
	cursor  int
	col     int
	editing bool
	input   textinput.Model
}

func (a App) updateBillsTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.billsTab.cursor < len(a.bills)-1 {
			a.billsTab.cursor++
		}
	case "k", "up":
		if a.billsTab.cursor > 0 {
			a.billsTab.cursor--
		}
	case "h":
		if a.billsTab.col > 0 {
			a.billsTab.col--
		}
	case "l":
		if a.billsTab.col < billColCount-1 {
			a.billsTab.col++
		}
	case "g":
		a.billsTab.cursor = 0
	case "G":
		a.billsTab.cursor = len(a.bills) - 1
		if a.billsTab.cursor < 0 {
			a.billsTab.cursor = 0
		}
	case " ":
		if b, ok := a.selectedBill(); ok {
			paid := !b.Paid
			a.store.Update(b.ID, model.BillPatch{Paid: &paid})
			a.recompute()
		}
	case "enter":
		return a.billStartEdit()
	case "a":
		added := a.store.Add()
		a.recompute()
		for i, b := range a.bills {
			if b.ID == added.ID {
				a.billsTab.cursor = i
				break
			}
		}
		a.billsTab.col = billColName
		return a.billStartEdit()
	case "x":
		if b, ok := a.selectedBill(); ok {
			a.deleteID = b.ID
			name := b.Name
			if name == "" {
				name = "this bill"
			}
			return a.startConfirm(confirmDeleteBill,
				fmt.Sprintf("Delete %q?", name), "Delete")
		}
	case "c":
		a.store.ClearPaidFlags()
		a.recompute()
	}
	return a, nil
}

func (a App) selectedBill() (model.Bill, bool) {
	if a.billsTab.cursor < 0 || a.billsTab.cursor >= len(a.bills) {
		return model.Bill{}, false
	}
	return a.bills[a.billsTab.cursor], true
}

func (a App) billStartEdit() (tea.Model, tea.Cmd) {
	b, ok := a.selectedBill()
	if !ok {
		return a, nil
	}

	var ti textinput.Model
	switch a.billsTab.col {
	case billColName:
		ti = newFieldInput("Rent", b.Name)
		ti.CharLimit = 64
		ti.Width = 28
	case billColDate:
		ti = newFieldInput(model.DateLayout, b.Date)
		ti.CharLimit = 10
		ti.Width = 12
	case billColAmount:
		value := ""
		if b.Amount != 0 {
			value = b.Amount.Format()
		}
		ti = newFieldInput("0.00", value)
	}

	ti.Focus()
	a.billsTab.editing = true
	a.billsTab.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateBillInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if b, ok := a.selectedBill(); ok {
			val := a.billsTab.input.Value()
			var patch model.BillPatch
			switch a.billsTab.col {
			case billColName:
				patch.Name = &val
			case billColDate:
				patch.Date = &val
			case billColAmount:
				patch.RawAmount = &val
			}
			a.store.Update(b.ID, patch)
			a.recompute()

			// Ordering may move the edited row; follow it.
			for i, nb := range a.bills {
				if nb.ID == b.ID {
					a.billsTab.cursor = i
					break
				}
			}
		}
		a.billsTab.editing = false
		return a, nil
	case "esc":
		a.billsTab.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.billsTab.input, cmd = a.billsTab.input.Update(msg)
	return a, cmd
}

func (a App) renderBillsTab(cw, contentH int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimValueStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright)
	selectedCellStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Bold(true)
	flagStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)

	nameW := innerW - 12 - 12 - 6 - 6 // date, amount, paid, separators
	if nameW < 12 {
		nameW = 12
	}
	if nameW > 32 {
		nameW = 32
	}

	var body strings.Builder

	// Header row
	body.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s  %-10s  %12s  %-5s",
		nameW, "Name", "Date", "Amount", "Paid")))
	body.WriteString("\n")

	if len(a.bills) == 0 {
		body.WriteString("\n")
		body.WriteString(labelStyle.Render("  No bills yet. Press [a] to add one."))
		body.WriteString("\n")
	}

	// Visible window follows the cursor when the table is tall.
	maxRows := contentH - 10
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if a.billsTab.cursor >= maxRows {
		start = a.billsTab.cursor - maxRows + 1
	}

	migrated := false
	for i := start; i < len(a.bills) && i < start+maxRows; i++ {
		b := a.bills[i]
		selected := i == a.billsTab.cursor

		name := truncStr(b.Name, nameW)
		if name == "" {
			name = "(unnamed)"
		}
		date := cli.FormatDate(b.Date)
		if b.Migrated {
			date += "*"
			migrated = true
		}
		amount := cli.FormatMoney(b.Amount)
		paid := cli.FormatPaid(b.Paid)

		cells := []string{
			fmt.Sprintf("%-*s", nameW, name),
			fmt.Sprintf("%-10s", date),
			fmt.Sprintf("%12s", amount),
			fmt.Sprintf("%-5s", paid),
		}

		if selected && a.billsTab.editing {
			cells[a.billsTab.col] = a.billsTab.input.View()
		}

		var row strings.Builder
		if selected {
			row.WriteString(selectedStyle.Render("▸ "))
		} else {
			row.WriteString(valueStyle.Render("  "))
		}
		for c, cell := range cells {
			style := valueStyle
			if b.Paid && !selected {
				style = dimValueStyle
			}
			if selected {
				style = selectedStyle
				if c == a.billsTab.col {
					style = selectedCellStyle
				}
			}
			if selected && a.billsTab.editing && c == a.billsTab.col {
				row.WriteString(cell)
			} else {
				row.WriteString(style.Render(cell))
			}
			if c < len(cells)-1 {
				row.WriteString(style.Render("  "))
			}
		}
		body.WriteString(row.String())
		body.WriteString("\n")
	}

	body.WriteString("\n")
	if migrated {
		body.WriteString(flagStyle.Render("  * date carried over from an old record, check the day"))
		body.WriteString("\n")
	}
	body.WriteString(labelStyle.Render("  [j/k] row  [h/l] column  [Enter] edit  [Space] paid  [a]dd  [x] delete  [c]lear paid"))

	// Summary line under the table
	var summary strings.Builder
	summary.WriteString(labelStyle.Render("Total unpaid:  ") + valueStyle.Render(cli.FormatMoney(a.metrics.TotalUnpaid)))

	var out strings.Builder
	out.WriteString(components.ContentCard("Bills", body.String(), cw))
	out.WriteString("\n")
	out.WriteString(components.ContentCard("", summary.String(), cw))

	return out.String()
}
