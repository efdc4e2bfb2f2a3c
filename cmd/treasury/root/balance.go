package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treasury/internal/engine"
	"treasury/internal/ui"
)

func newBalanceCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the treasury balance and history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.Load(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCoin, "The Treasury"))
			fmt.Fprintln(out, ui.LabelValue("Current Balance", ui.Gold.Render(ui.Yuan(st.Balance))))
			fmt.Fprintln(out, ui.LabelValue("Lifetime Earnings", ui.Yuan(st.TotalEarnings)))
			fmt.Fprintln(out, "")

			txs := st.Transactions
			if limit > 0 && len(txs) > limit {
				txs = txs[len(txs)-limit:]
			}
			fmt.Fprintln(out, ui.H2.Render("History"))
			// Newest first, like a bank statement.
			for i := len(txs) - 1; i >= 0; i-- {
				t := txs[i]
				icon := ui.IconUp
				amount := ui.Good.Render("+ " + t.Amount.Abs().String())
				if t.Type == engine.TxExpense {
					icon = ui.IconDown
					amount = ui.Bad.Render("- " + t.Amount.Abs().String())
				}
				fmt.Fprintf(out, "%s %-28s %s  %s\n", icon, t.Description, amount, ui.Muted.Render(t.Date.Format("2006-01-02")))
			}
			if len(txs) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No transactions yet."))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the latest N transactions")

	return cmd
}
