package cmd

import (
	"fmt"

	"github.com/theirongolddev/billtab/internal/cli"
	"github.com/theirongolddev/billtab/internal/engine"
	"github.com/theirongolddev/billtab/internal/money"

	"github.com/spf13/cobra"
)

var (
	flagBalance  string
	flagPurchase string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check bill coverage and purchase affordability",
	Long:  "Compute what your balance covers and whether a purchase is safe, given the unpaid bills on record.",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&flagBalance, "balance", "b", "0", "Current account balance")
	checkCmd.Flags().StringVarP(&flagPurchase, "purchase", "p", "0", "Purchase amount to test")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	st, err := openStore(newLogger())
	if err != nil {
		return fmt.Errorf("opening bill store: %w", err)
	}
	defer st.Close()

	balance, _ := money.Parse(flagBalance)
	purchase, _ := money.Parse(flagPurchase)

	bills := st.Bills()
	m := engine.Compute(bills, balance, purchase)

	t := cli.Table{
		Title: "Affordability Check",
		Rows: [][]string{
			{"Balance", cli.FormatMoney(balance)},
			{"Total unpaid bills", cli.FormatMoney(m.TotalUnpaid)},
			{"After bills", cli.FormatMoney(m.ProjectedBalance)},
			{"After purchase", cli.FormatMoney(m.AfterPurchase)},
			{"---"},
			{"Coverage", cli.RenderCoverageBadge(m.Coverage)},
			{"Purchase", cli.RenderAffordabilityBadge(m.Affordability)},
		},
	}
	fmt.Print(cli.RenderTable(t))

	t = cli.Table{
		Title: "Unpaid by Cadence",
		Rows: [][]string{
			{"Due by the 1st", cli.FormatMoney(m.Cadence.Early)},
			{"Due by the 15th", cli.FormatMoney(m.Cadence.Late)},
		},
	}
	fmt.Print(cli.RenderTable(t))

	return nil
}
