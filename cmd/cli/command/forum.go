package command

import (
	"fmt"

	"exlibris/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var forumCmd = &cobra.Command{
	Use:   "forum",
	Short: "Read and write forum posts",
}

var listPostsCmd = &cobra.Command{
	Use:   "list",
	Short: "List forum posts, pinned first",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")

		c, err := newClient(false)
		if err != nil {
			return err
		}
		out, err := c.ForumPosts(page)
		if err != nil {
			return fmt.Errorf("failed to list posts: %w", err)
		}
		if len(out.Posts) == 0 {
			fmt.Println("No posts yet.")
			return nil
		}

		for _, p := range out.Posts {
			printPost(p)
		}
		printRule()
		printPagination(out.Pagination.Number, out.Pagination.TotalPages, out.Pagination.Total)
		return nil
	},
}

var showPostCmd = &cobra.Command{
	Use:   "show [post-id]",
	Short: "Show a post (counts as a view)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post id")
		if err != nil {
			return err
		}

		c, err := newClient(false)
		if err != nil {
			return err
		}
		p, err := c.ForumPost(id)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		printPost(*p)
		printRule()
		fmt.Println(p.Content)
		return nil
	},
}

var createPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Create a forum post",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.CreatePostDTO
		req.Title, _ = cmd.Flags().GetString("title")
		req.Content, _ = cmd.Flags().GetString("content")
		req.Category, _ = cmd.Flags().GetString("category")
		if group, _ := cmd.Flags().GetInt64("group"); group > 0 {
			req.ForumGroupID = &group
		}

		c, err := newClient(true)
		if err != nil {
			return err
		}
		p, err := c.CreatePost(req)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		success.Printf("✓ Post #%d created\n", p.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(forumCmd)
	forumCmd.AddCommand(listPostsCmd, showPostCmd, createPostCmd)

	listPostsCmd.Flags().Int("page", 1, "page number")

	createPostCmd.Flags().String("title", "", "post title")
	createPostCmd.Flags().String("content", "", "post body")
	createPostCmd.Flags().String("category", "discussion", "review, discussion, question or news")
	createPostCmd.Flags().Int64("group", 0, "forum group id")
	createPostCmd.MarkFlagRequired("title")
	createPostCmd.MarkFlagRequired("content")
}
