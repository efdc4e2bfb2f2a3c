package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"treasury/internal/engine"
	"treasury/internal/ui"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's quests",
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

			today := engine.DateOf(time.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconMonster, "Today's Quests"))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, st.Streak)))
			done, total := st.DailyProgress(today)
			fmt.Fprintln(out, ui.LabelValue("Progress", ui.ProgressBar(done, total, 24)))
			fmt.Fprintln(out, "")

			for _, t := range st.TasksFor(today) {
				fmt.Fprintf(out, "%s %s  %s  %s\n", ui.KindIcon(t.Kind), t.Title, ui.StatusText(t.Status), ui.Muted.Render("+"+ui.Yuan(t.Reward)))
				fmt.Fprintf(out, "   %s  %s\n", ui.Muted.Render(t.Description), ui.Muted.Render("id: "+t.ID))
			}
			if total > 0 && done == total {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Gold.Render(ui.IconSparkle+" All clear! Bonus unlocked."))
			}
			return nil
		},
	}

	return cmd
}
