package cmd

import (
	"fmt"

	"github.com/theirongolddev/billtab/internal/cli"
	"github.com/theirongolddev/billtab/internal/engine"
	"github.com/theirongolddev/billtab/internal/money"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <income>",
	Short: "Split monthly income 50/30/20",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(_ *cobra.Command, args []string) error {
	income, ok := money.Parse(args[0])
	if !ok {
		return fmt.Errorf("unparseable income %q", args[0])
	}

	s := engine.SplitIncome(income)

	t := cli.Table{
		Title: fmt.Sprintf("Income Split: %s", cli.FormatMoney(income)),
		Rows: [][]string{
			{"Needs (50%)", cli.FormatMoney(s.Needs)},
			{"Wants (30%)", cli.FormatMoney(s.Wants)},
			{"Savings (20%)", cli.FormatMoney(s.Savings)},
		},
	}
	fmt.Print(cli.RenderTable(t))
	return nil
}
