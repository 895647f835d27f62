package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/dto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	payDescription string
	payPrivacy     string
	payRequest     bool
)

var payCmd = &cobra.Command{
	Use:   "pay <from-username> <to-username> <amount-cents>",
	Short: "Record a payment (or, with --request, a request)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[2])
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		sender, err := findUser(a, args[0])
		if err != nil {
			return err
		}
		receiver, err := findUser(a, args[1])
		if err != nil {
			return err
		}
		accounts := a.Store.BankAccounts().ByUserID(sender.ID)
		if len(accounts) == 0 {
			return fmt.Errorf("%s has no linked bank account", sender.Username)
		}

		kind := ledger.KindPayment
		if payRequest {
			kind = ledger.KindRequest
		}
		txn, err := a.Transactions.Create(context.Background(), sender.ID, kind, dto.TransactionCreate{
			SenderID:     sender.ID,
			ReceiverID:   receiver.ID,
			Source:       accounts[0].ID.String(),
			Amount:       amount,
			Description:  payDescription,
			PrivacyLevel: ledger.PrivacyLevel(payPrivacy),
		})
		if err != nil {
			return err
		}
		if err := saveSnapshot(a); err != nil {
			return err
		}

		color.Green("%s: %s -> %s %s", kind, sender.Username, receiver.Username, formatCents(txn.Amount))
		for _, transfer := range a.Store.BankTransfers().ByTransactionID(txn.ID) {
			color.Yellow("  bank %s of %s", transfer.Type, formatCents(transfer.Amount))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(payCmd)
	payCmd.Flags().StringVarP(&payDescription, "description", "d", "", "Transaction description")
	payCmd.Flags().StringVar(&payPrivacy, "privacy", string(ledger.PrivacyContacts), "Privacy level: public, contacts or private")
	payCmd.Flags().BoolVar(&payRequest, "request", false, "Create a request instead of a payment")
}
