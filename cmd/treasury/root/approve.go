package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"treasury/internal/ui"
)

func newApproveCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "approve <task-id>",
		Short: "Approve a submitted quest and credit its reward (parent)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task-id is required")
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

			st, res, err := svc.Approve(ctx, pin, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.AlreadyApproved {
				fmt.Fprintf(out, "%s %s %s\n", ui.Muted.Render(ui.IconCheck+" Already approved"), res.Task.Title, ui.Muted.Render("(no extra payout)"))
				return nil
			}

			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconCheck+" Approved"), res.Task.Title, ui.Gold.Render("+"+ui.Yuan(res.Credited)))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Yuan(st.Balance)))
			if res.StreakBonus {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeBonus, ui.Warn.Render(fmt.Sprintf("%s streak is now %d days", ui.IconFlame, res.Streak)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN")

	return cmd
}
