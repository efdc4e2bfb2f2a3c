package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"treasury/internal/ui"
)

func newRejectCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "reject <task-id>",
		Short: "Reject a submitted quest so it can be redone (parent)",
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

			st, err := svc.Reject(ctx, pin, args[0])
			if err != nil {
				return err
			}

			t, _ := st.TaskByID(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Bad.Render(ui.IconCross+" Rejected"), t.Title, ui.Muted.Render("(the quest can be resubmitted)"))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN")

	return cmd
}
