package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treasury/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "treasury",
	Short:         "Monster Treasury — household quest & allowance tracker",
	Long:          "Monster Treasury is a local-first tracker for daily kid quests: submit proof, get parent approval, and watch the treasury grow toward wishlist goals.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTodayCmd(),
		newSubmitCmd(),
		newApproveCmd(),
		newRejectCmd(),
		newDeductCmd(),
		newBalanceCmd(),
		newWishCmd(),
		newStatusCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
