package commands

import (
	"fmt"

	"github.com/amirasaad/peerpay/pkg/dto"
	"github.com/amirasaad/peerpay/pkg/service/feed"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	feedScope    string
	feedStatus   string
	feedPageSize int
	feedCursor   string
)

var feedCmd = &cobra.Command{
	Use:   "feed <username>",
	Short: "Show one page of a user's feed",
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
		filter := dto.TransactionFilter{Status: dto.StatusFilter(feedStatus)}

		var page feed.Page
		switch feedScope {
		case "personal":
			page, err = a.Feed.ForUserPage(u.ID, filter, feedCursor, feedPageSize)
		case "contacts":
			page, err = a.Feed.ForUserContactsPage(u.ID, filter, feedCursor, feedPageSize)
		case "public":
			page, err = a.Feed.AllPublicPage(feedCursor, feedPageSize)
		default:
			return fmt.Errorf("unknown scope %q (want personal, contacts or public)", feedScope)
		}
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		for _, item := range page.Items {
			bold.Printf("%s  %s -> %s  %s\n",
				item.CreatedAt.Format("2006-01-02 15:04"),
				item.SenderName, item.ReceiverName, formatCents(item.Amount))
			fmt.Printf("    %s  [%s/%s]  %d likes, %d comments\n",
				item.Description, item.Status, item.PrivacyLevel, item.Likes, item.Comments)
		}
		if page.NextCursor != "" {
			color.Blue("next page: --cursor %s", page.NextCursor)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().StringVar(&feedScope, "scope", "personal", "Feed scope: personal, contacts or public")
	feedCmd.Flags().StringVar(&feedStatus, "status", "", "Status filter: complete, incomplete or pending")
	feedCmd.Flags().IntVar(&feedPageSize, "page-size", 0, "Page size (0 uses the configured default)")
	feedCmd.Flags().StringVar(&feedCursor, "cursor", "", "Resume from a previous page's next cursor")
}
