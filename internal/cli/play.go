package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/quiz"
)

// NewPlayCmd runs a quiz in the terminal.
func NewPlayCmd() *cobra.Command {
	var (
		file string
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Take the quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadLocalCatalog(file)
			if err != nil {
				return err
			}
			var src quiz.Source = quiz.DefaultSource
			if seed != 0 {
				src = rand.New(rand.NewSource(seed))
			}
			return playQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), quiz.NewController(src), c.Questions)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML catalog to play instead of the built-in one")
	cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed for a repeatable order (0 = random)")
	return cmd
}

// playQuiz reads one command per line: an option number selects it, "n"
// moves on, "r" retries after the results, "q" quits.
func playQuiz(in io.Reader, out io.Writer, controller *quiz.Controller, questions []domain.Question) error {
	session, err := controller.Start(questions)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for {
		view := quiz.Render(session)
		printView(out, view)
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(strings.ToLower(scanner.Text()))

		switch {
		case input == "q":
			return nil
		case input == "r" && session.Complete:
			if session, err = controller.Reset(session, questions); err != nil {
				return err
			}
		case input == "n":
			err = controller.Advance(session)
		default:
			n, convErr := strconv.Atoi(input)
			if convErr != nil || view.Question == nil || n < 1 || n > len(view.Question.Options) {
				fmt.Fprintf(out, "unrecognised input %q\n", input)
				continue
			}
			err = controller.SelectOption(session, view.Question.Options[n-1].Text)
		}
		if errors.Is(err, domain.ErrSessionComplete) || errors.Is(err, domain.ErrInvalidOption) {
			fmt.Fprintln(out, err)
			err = nil
		}
		if err != nil {
			return err
		}
	}
}

func printView(out io.Writer, v quiz.View) {
	if v.Result != nil {
		printResult(out, v.Result)
		return
	}
	q := v.Question
	fmt.Fprintf(out, "\n[%s] %s\n%s\n", q.Category, q.Progress, q.Prompt)
	for i, o := range q.Options {
		marker := " "
		if o.Selected {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %d) %s\n", marker, i+1, o.Text)
	}
	fmt.Fprintf(out, "choose 1-%d, n for %s, q to quit: ", len(q.Options), q.Action)
}

func printResult(out io.Writer, r *quiz.ResultView) {
	fmt.Fprintf(out, "\nQuiz Completed\nYour Score: %d / %d (%.0f%%)\n", r.Score, r.Total, r.Percent)
	for _, e := range r.Review {
		fmt.Fprintf(out, "\n%d. %s\n   Your Answer: %s\n", e.Number, e.Prompt, e.Selected)
		if !e.Correct {
			fmt.Fprintf(out, "   Correct Answer: %s\n", e.CorrectAnswer)
		}
		fmt.Fprintf(out, "   Category: %s\n", e.Category)
	}
	fmt.Fprint(out, "\nr to take the quiz again, q to quit: ")
}
