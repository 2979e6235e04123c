package cmd

import (
	"strings"

	"github.com/SscSPs/firm_books/internal/core/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/spf13/cobra"
)

// classifyCmd represents the classify command.
var classifyCmd = &cobra.Command{
	Use:   "classify <narration>",
	Short: "Suggest postings for a narration",
	Long: `Runs the narration classifier and prints the suggested postings.
Nothing is stored. "matched" is false when no rule applies.

Example:
  booksctl classify "Paid electricity bill 1200"
  CLASSIFIER_HINGLISH=true booksctl classify "kiraya diya 8000"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cls, err := services.NewClassifier(cfg)
	if err != nil {
		return err
	}

	result := cls.Explain(strings.Join(args, " "))
	return render(cmd.OutOrStdout(), dto.ClassifyResponse{
		Matched:  result.Matched(),
		Rule:     result.Rule,
		Amount:   result.Amount,
		Postings: dto.ToPostingResponses(result.Postings),
	})
}
