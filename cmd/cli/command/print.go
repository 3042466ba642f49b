package command

import (
	"fmt"
	"os"
	"strings"

	"exlibris/internal/microservices/http-api/dto"

	"github.com/fatih/color"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	muted   = color.New(color.Faint)
	failure = color.New(color.FgRed, color.Bold)
)

const rule = 50

func printError(err error) {
	failure.Fprintln(os.Stderr, "Error:", err)
}

func printRule() {
	muted.Println(strings.Repeat("-", rule))
}

func printBook(b dto.BookResponse) {
	heading.Printf("%s", b.Title)
	fmt.Printf("  by %s\n", b.Author.Name)
	fmt.Printf("Slug: %s\n", b.Slug)
	if b.Genre != nil {
		fmt.Printf("Genre: %s\n", b.Genre.Name)
	}
	fmt.Printf("Match: %d%%\n", b.MatchPercentage)
	if b.UserStatus != "" {
		success.Printf("Your status: %s\n", b.UserStatus)
	}
}

func printPagination(number, totalPages int, total int64) {
	muted.Printf("Page %d of %d (%d total)\n", number, totalPages, total)
}

func printPost(p dto.ForumPostResponse) {
	title := p.Title
	if p.IsPinned {
		title = "[pinned] " + title
	}
	heading.Printf("#%d %s\n", p.ID, title)
	by := p.Username
	if by == "" {
		by = p.UserID
	}
	muted.Printf("%s by %s, %s, %d views, %d likes\n", p.Category, by, p.CreatedAt.Format("2006-01-02 15:04"), p.Views, p.Likes)
}
