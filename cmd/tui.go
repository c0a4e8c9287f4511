package cmd

import (
	"fmt"

	"github.com/theirongolddev/billtab/internal/config"
	"github.com/theirongolddev/billtab/internal/tui"
	"github.com/theirongolddev/billtab/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes.
	// Without this, lipgloss may default to Ascii profile (no colors).
	lipgloss.SetColorProfile(termenv.TrueColor)

	st, err := openStore(newLogger())
	if err != nil {
		return fmt.Errorf("opening bill store: %w", err)
	}

	app := tui.NewApp(st)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		_ = st.Close()
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
