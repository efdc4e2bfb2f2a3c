package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"treasury/internal/engine"
	"treasury/internal/ui"
)

func newDeductCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "deduct <amount> <reason...>",
		Short: "Deduct funds from the treasury (parent)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("amount and reason are required")
			}
			if _, err := engine.ParseCents(args[0]); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			amount, err := engine.ParseCents(args[0])
			if err != nil {
				return err
			}
			reason := strings.Join(args[1:], " ")

			st, err := svc.Deduct(ctx, pin, amount, reason)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Warn.Render(ui.IconDown+" Deducted"), ui.Yuan(amount), ui.Muted.Render(reason))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Yuan(st.Balance)))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN")

	return cmd
}
