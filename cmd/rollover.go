package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Clear all paid flags for a new month",
	Long:  "Marks every bill unpaid so the ledger is ready for the next cycle. No bills are deleted.",
	RunE:  runRollover,
}

func init() {
	rootCmd.AddCommand(rolloverCmd)
}

func runRollover(_ *cobra.Command, _ []string) error {
	st, err := openStore(newLogger())
	if err != nil {
		return fmt.Errorf("opening bill store: %w", err)
	}
	defer st.Close()

	st.ClearPaidFlags()
	st.Flush()

	fmt.Printf("Cleared paid flags on %d bills.\n", len(st.Bills()))
	return nil
}
