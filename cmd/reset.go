package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagResetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all bills and saved data",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagResetForce {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Erase all bills and saved data?").
					Affirmative("Erase everything").
					Negative("Cancel").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	st, err := openStore(newLogger())
	if err != nil {
		return fmt.Errorf("opening bill store: %w", err)
	}
	defer st.Close()

	st.ResetAll()
	fmt.Println("All data erased.")
	return nil
}
