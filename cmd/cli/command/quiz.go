package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the book recommendation quiz",
}

var quizQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List quiz questions and their option ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(false)
		if err != nil {
			return err
		}

		questions, err := c.QuizQuestions()
		if err != nil {
			return fmt.Errorf("failed to get quiz: %w", err)
		}
		for _, q := range questions {
			heading.Println(q.Question)
			for _, o := range q.Options {
				fmt.Printf("  [%d] %s\n", o.ID, o.Text)
			}
		}
		return nil
	},
}

var quizSubmitCmd = &cobra.Command{
	Use:   "submit [option-id...]",
	Short: "Submit chosen option ids and get up to four recommendations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, a := range args {
			id, err := parseID(a, "option id")
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}

		c, err := newClient(true)
		if err != nil {
			return err
		}
		books, err := c.SubmitQuiz(ids)
		if err != nil {
			return fmt.Errorf("failed to submit quiz: %w", err)
		}
		if len(books) == 0 {
			fmt.Println("No recommendations, the catalog is empty.")
			return nil
		}

		for _, b := range books {
			heading.Printf("%3d%% ", b.MatchPercentage)
			fmt.Printf("%s by %s (%s)\n", b.Title, b.Author, b.Slug)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.AddCommand(quizQuestionsCmd, quizSubmitCmd)
}
