package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"treasury/internal/engine"
	"treasury/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var auditLimit int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show streak, progress and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := a.svc.Load(ctx)
			if err != nil {
				return err
			}

			today := engine.DateOf(time.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Treasury Status"))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, st.Streak)))
			done, total := st.DailyProgress(today)
			fmt.Fprintln(out, ui.LabelValue("Today", ui.ProgressBar(done, total, 24)))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Yuan(st.Balance)))
			fmt.Fprintln(out, ui.LabelValue("Lifetime Earnings", ui.Yuan(st.TotalEarnings)))
			fmt.Fprintln(out, ui.LabelValue("Wishes", len(st.Wishes)))
			fmt.Fprintln(out, "")

			entries, err := a.store.AuditRepo().ListRecent(ctx, auditLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render("Recent activity"))
			for _, e := range entries {
				fmt.Fprintf(out, "- %s %s %s\n", ui.Muted.Render(e.At.Local().Format("01-02 15:04")), ui.Key.Render(e.Action), ui.Muted.Render(e.Detail))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&auditLimit, "limit", "n", 10, "How many audit entries to show")

	return cmd
}
