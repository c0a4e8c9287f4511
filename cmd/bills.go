package cmd

import (
	"fmt"

	"github.com/theirongolddev/billtab/internal/cli"
	"github.com/theirongolddev/billtab/internal/engine"

	"github.com/spf13/cobra"
)

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "Print the bill ledger",
	RunE:  runBills,
}

func init() {
	rootCmd.AddCommand(billsCmd)
}

func runBills(_ *cobra.Command, _ []string) error {
	st, err := openStore(newLogger())
	if err != nil {
		return fmt.Errorf("opening bill store: %w", err)
	}
	defer st.Close()

	bills := engine.OrderForDisplay(st.Bills())
	if len(bills) == 0 {
		fmt.Println("No bills tracked. Run `billtab` to add some.")
		return nil
	}

	t := cli.Table{
		Title:   "Bills",
		Headers: []string{"Name", "Date", "Amount", "Paid"},
	}
	for _, b := range bills {
		name := b.Name
		if name == "" {
			name = "(unnamed)"
		}
		t.Rows = append(t.Rows, []string{
			name,
			cli.FormatDate(b.Date),
			cli.FormatMoney(b.Amount),
			cli.FormatPaid(b.Paid),
		})
	}
	t.Rows = append(t.Rows, []string{"---"})
	t.Rows = append(t.Rows, []string{
		"Total unpaid", "", cli.FormatMoney(engine.TotalUnpaid(bills)), "",
	})

	fmt.Print(cli.RenderTable(t))
	return nil
}
