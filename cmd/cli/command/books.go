package command

import (
	"fmt"
	"strconv"
	"strings"

	"exlibris/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Browse the catalog",
}

var listBooksCmd = &cobra.Command{
	Use:   "list [search...]",
	Short: "List books, optionally filtered and sorted",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(false)
		if err != nil {
			return err
		}

		params := client.BookListParams{Search: strings.Join(args, " ")}
		params.Genre, _ = cmd.Flags().GetInt64("genre")
		params.Author, _ = cmd.Flags().GetInt64("author")
		params.Sort, _ = cmd.Flags().GetString("sort")
		params.Page, _ = cmd.Flags().GetInt("page")

		out, err := c.ListBooks(params)
		if err != nil {
			return fmt.Errorf("failed to list books: %w", err)
		}
		if len(out.Books) == 0 {
			fmt.Println("No books found.")
			return nil
		}

		for _, b := range out.Books {
			printBook(b)
			printRule()
		}
		printPagination(out.Pagination.Number, out.Pagination.TotalPages, out.Pagination.Total)
		return nil
	},
}

var showBookCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show a book with similar titles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(false)
		if err != nil {
			return err
		}

		out, err := c.GetBook(args[0])
		if err != nil {
			return fmt.Errorf("failed to get book: %w", err)
		}

		printBook(out.Book)
		if out.Book.Description != "" {
			fmt.Println()
			fmt.Println(out.Book.Description)
		}
		if len(out.SimilarBooks) > 0 {
			fmt.Println()
			heading.Println("Similar books")
			for _, s := range out.SimilarBooks {
				fmt.Printf("  %s (%s)\n", s.Title, s.Slug)
			}
		}
		return nil
	},
}

// parseID reads a positional id argument.
func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", what, raw)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(booksCmd)
	booksCmd.AddCommand(listBooksCmd, showBookCmd)

	listBooksCmd.Flags().Int64("genre", 0, "genre id")
	listBooksCmd.Flags().Int64("author", 0, "author id")
	listBooksCmd.Flags().String("sort", "", "title, -title, created_at, -created_at, match_percentage, -match_percentage")
	listBooksCmd.Flags().Int("page", 1, "page number")
}
