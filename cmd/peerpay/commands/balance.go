package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <username>",
	Short: "Show a user's cached and recomputed balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		u, err := findUser(a, args[0])
		if err != nil {
			return err
		}
		computed, err := a.Balance.ComputeBalance(u.ID)
		if err != nil {
			return err
		}
		color.New(color.Bold).Printf("%s (%s)\n", u.FullName(), u.Username)
		color.Cyan("cached:     %s", formatCents(u.Balance))
		if computed == u.Balance {
			color.Cyan("recomputed: %s", formatCents(computed))
		} else {
			color.Red("recomputed: %s (cache drift!)", formatCents(computed))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
