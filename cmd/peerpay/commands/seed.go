package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/amirasaad/peerpay/internal/fixtures"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedOut string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a fresh demo snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot := fixtures.Seed()
		raw, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(seedOut, raw, 0o644); err != nil {
			return err
		}
		color.Green("seeded %d users, %d transactions -> %s",
			len(snapshot.Users), len(snapshot.Transactions), seedOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVarP(&seedOut, "out", "o", "data/seed.json", "Output file")
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
