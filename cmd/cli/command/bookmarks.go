package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage your reading list",
}

var listBookmarksCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks, optionally by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")

		c, err := newClient(true)
		if err != nil {
			return err
		}
		out, err := c.Bookmarks(status)
		if err != nil {
			return fmt.Errorf("failed to get bookmarks: %w", err)
		}
		if len(out.Bookmarks) == 0 {
			fmt.Printf("No bookmarks (%s).\n", out.CurrentStatus)
			return nil
		}

		for _, b := range out.Bookmarks {
			fmt.Printf("[%d] ", b.ID)
			heading.Printf("%-10s ", b.Status)
			fmt.Printf("%s by %s\n", b.Book.Title, b.Book.Author.Name)
		}
		return nil
	},
}

var setBookmarkCmd = &cobra.Command{
	Use:   "set [book-id] [status]",
	Short: "Set your status for a book (reading, planned, read, abandoned)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseID(args[0], "book id")
		if err != nil {
			return err
		}

		c, err := newClient(true)
		if err != nil {
			return err
		}
		if err := c.UpdateStatus(bookID, args[1]); err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		success.Printf("✓ Book %d marked as %s\n", bookID, args[1])
		return nil
	},
}

var removeBookmarkCmd = &cobra.Command{
	Use:   "remove [bookmark-id]",
	Short: "Remove one of your bookmarks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "bookmark id")
		if err != nil {
			return err
		}

		c, err := newClient(true)
		if err != nil {
			return err
		}
		if err := c.RemoveBookmark(id); err != nil {
			return fmt.Errorf("failed to remove bookmark: %w", err)
		}
		success.Println("✓ Bookmark removed")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile and the active reading challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true)
		if err != nil {
			return err
		}
		p, err := c.Profile()
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}

		heading.Println(p.Username)
		fmt.Printf("Karma: %d\n", p.Karma)
		fmt.Printf("Bookmarks: %d\n", len(p.Bookmarks))
		if ch := p.ActiveChallenge; ch != nil {
			fmt.Printf("Challenge %d: %d of %d books (%d%%)\n", ch.Year, ch.Current, ch.Goal, ch.ProgressPercentage)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookmarksCmd, profileCmd)
	bookmarksCmd.AddCommand(listBookmarksCmd, setBookmarkCmd, removeBookmarkCmd)

	listBookmarksCmd.Flags().String("status", "all", "all, reading, planned, read or abandoned")
}
