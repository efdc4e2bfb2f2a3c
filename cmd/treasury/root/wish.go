package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"treasury/internal/engine"
	"treasury/internal/ui"
)

func newWishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wish",
		Short: "Show the wishlist",
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
			fmt.Fprintln(out, ui.Heading(ui.IconGift, "Wishlist"))
			fmt.Fprintln(out, ui.Muted.Render("Save up for your rewards!"))
			fmt.Fprintln(out, "")

			for _, w := range st.Wishes {
				ratio, remaining := engine.WishProgress(st, w)
				pct := int(ratio * 100)
				fmt.Fprintf(out, "%s %s  %s\n", ui.IconGift, ui.H2.Render(w.Name), ui.Gold.Render(ui.Yuan(w.Price)))
				fmt.Fprintf(out, "   %s", ui.ProgressBar(pct, 100, 24))
				if remaining == 0 {
					fmt.Fprintf(out, "  %s\n", ui.Good.Render("Goal Reached! Ask parents to redeem."))
				} else {
					fmt.Fprintf(out, "  %s\n", ui.Muted.Render(ui.Yuan(remaining)+" to go"))
				}
			}
			if len(st.Wishes) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No goals yet. Add one with: treasury wish add <name> <price>"))
			}
			return nil
		},
	}

	cmd.AddCommand(newWishAddCmd())

	return cmd
}

func newWishAddCmd() *cobra.Command {
	var imageRef string

	cmd := &cobra.Command{
		Use:   "add <name> <price>",
		Short: "Add a new savings goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("name and price are required")
			}
			if _, err := engine.ParseCents(args[1]); err != nil {
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

			price, err := engine.ParseCents(args[1])
			if err != nil {
				return err
			}

			_, w, err := svc.AddWish(ctx, args[0], price, imageRef)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconGift+" Added"), w.Name, ui.Gold.Render(ui.Yuan(w.Price)))
			return nil
		},
	}

	cmd.Flags().StringVar(&imageRef, "image", "", "Image reference")

	return cmd
}
