// Package tui provides the interactive Bubble Tea dashboard for billtab.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/billtab/internal/config"
	"github.com/theirongolddev/billtab/internal/engine"
	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/money"
	"github.com/theirongolddev/billtab/internal/store"
	"github.com/theirongolddev/billtab/internal/tui/components"
	"github.com/theirongolddev/billtab/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabQuick = iota
	tabBills
	tabSplit
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteBill
	confirmResetAll
)

// App is the root Bubble Tea model.
type App struct {
	store *store.Store

	// Derived per recompute
	bills   []model.Bill // display-ordered
	metrics model.Metrics
	split   model.IncomeSplit

	// Scenario inputs (session-only, never persisted)
	balance  money.Amount
	purchase money.Amount
	income   money.Amount

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	quick    quickState
	billsTab billsState
	splitTab splitState
	settings settingsState

	// Pending destructive action (huh confirm)
	confirmForm *huh.Form
	confirmYes  bool
	confirm     confirmAction
	deleteID    string
}

// NewApp creates a new TUI app model around an open store.
func NewApp(st *store.Store) App {
	a := App{store: st}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// recompute refreshes the display ordering and all derived metrics.
// Called after every mutation and scenario input change.
func (a *App) recompute() {
	a.bills = engine.OrderForDisplay(a.store.Bills())
	a.metrics = engine.Compute(a.bills, a.balance, a.purchase)
	a.split = engine.SplitIncome(a.income)

	if a.billsTab.cursor >= len(a.bills) {
		a.billsTab.cursor = len(a.bills) - 1
	}
	if a.billsTab.cursor < 0 {
		a.billsTab.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.confirmForm != nil {
			a.confirmForm = a.confirmForm.WithWidth(msg.Width)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, a.quit()
		}

		// Confirmation form intercepts all keys
		if a.confirmForm != nil {
			return a.updateConfirmForm(msg)
		}

		// Active text inputs intercept all keys
		if a.activeTab == tabQuick && a.quick.editing {
			return a.updateQuickInput(msg)
		}
		if a.activeTab == tabBills && a.billsTab.editing {
			return a.updateBillInput(msg)
		}
		if a.activeTab == tabSplit && a.splitTab.editing {
			return a.updateSplitInput(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, a.quit()
		}

		// Tab navigation
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "t":
			return a.cycleTheme()
		}

		// Per-tab keybindings
		switch a.activeTab {
		case tabQuick:
			return a.updateQuickTab(key)
		case tabBills:
			return a.updateBillsTab(key)
		case tabSplit:
			return a.updateSplitTab(key)
		case tabSettings:
			return a.updateSettingsTab(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the confirm form (cursor blinks, etc.)
	if a.confirmForm != nil {
		return a.updateConfirmForm(msg)
	}

	return a, nil
}

// quit flushes any pending debounced write before exiting.
func (a App) quit() tea.Cmd {
	_ = a.store.Close()
	return tea.Quit
}

// cycleTheme advances to the next theme and persists the choice.
func (a App) cycleTheme() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	next := theme.Next(cfg.Appearance.Theme)
	cfg.Appearance.Theme = next
	theme.SetActive(next)
	_ = config.Save(cfg)
	return a, nil
}

// ─── Confirmation form ──────────────────────────────────────────

func newConfirmForm(title, affirmative string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(affirmative).
				Negative("Cancel").
				Value(value),
		),
	)
}

func (a App) startConfirm(action confirmAction, title, affirmative string) (tea.Model, tea.Cmd) {
	a.confirm = action
	a.confirmYes = false
	a.confirmForm = newConfirmForm(title, affirmative, &a.confirmYes)
	if a.width > 0 {
		a.confirmForm = a.confirmForm.WithWidth(a.width)
	}
	return a, a.confirmForm.Init()
}

func (a App) updateConfirmForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.confirmForm = f
	}

	if a.confirmForm.State == huh.StateCompleted {
		if a.confirmYes {
			switch a.confirm {
			case confirmDeleteBill:
				a.store.Remove(a.deleteID)
			case confirmResetAll:
				a.store.ResetAll()
				a.balance, a.purchase, a.income = 0, 0, 0
			}
			a.recompute()
		}
		a.confirmForm = nil
		a.confirm = confirmNone
		a.deleteID = ""
		return a, nil
	}

	if a.confirmForm.State == huh.StateAborted {
		a.confirmForm = nil
		a.confirm = confirmNone
		a.deleteID = ""
		return a, nil
	}

	return a, cmd
}

// ─── Layout ─────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.confirmForm != nil {
		return a.viewConfirm()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  billtab needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewConfirm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	card := cardStyle.Render(a.confirmForm.View())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"1 2 3 4", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate rows and fields"},
		{"h l", "Move between columns"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Edit / Confirm"},
		{"Esc", "Cancel edit"},
		{"Space", "Toggle paid (Bills)"},
		{"a", "Add bill (Bills)"},
		{"x", "Delete bill (Bills)"},
		{"c", "Clear all paid flags (Bills)"},
		{"t", "Cycle theme"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	savedAt := ""
	if ts := a.store.LastSaved(); !ts.IsZero() {
		savedAt = ts.Format("15:04:05")
	}
	statusBar := components.RenderStatusBar(w, savedAt)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabQuick:
		content = a.renderQuickTab(cw)
	case tabBills:
		content = a.renderBillsTab(cw, contentH)
	case tabSplit:
		content = a.renderSplitTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// loadConfigOrDefault loads config, returning defaults on error so the
// TUI can always start even if the config file is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards and empty lines keep the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
