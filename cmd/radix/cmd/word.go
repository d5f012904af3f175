package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radix-engine/backend/internal/decompose"
)

var wordFormat string

var wordCmd = &cobra.Command{
	Use:   "word <word>",
	Short: "Break a word into its morphemes",
	Long:  "Looks the word up in the academic word index and resolves each morpheme against the corpus.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWord,
}

var wordsCmd = &cobra.Command{
	Use:   "words <query>",
	Short: "List indexed words containing the query",
	Args:  cobra.ExactArgs(1),
	RunE:  runWords,
}

func init() {
	wordCmd.Flags().StringVarP(&wordFormat, "format", "f", "ascii", "Output format: ascii or json")
}

type wordOutput struct {
	*decompose.Decomposition
	ASCII string `json:"ascii"`
}

func runWord(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}

	dec, ok := eng.Decompose(args[0], langFlag)
	if !ok {
		return fmt.Errorf("word %q not found in academic vocabulary; try: radix lookup %s", args[0], args[0])
	}

	ascii := eng.Render(dec)
	switch wordFormat {
	case "json":
		return printJSON(cmd.OutOrStdout(), wordOutput{Decomposition: dec, ASCII: ascii})
	case "ascii", "":
		_, err := fmt.Fprintln(cmd.OutOrStdout(), ascii)
		return err
	default:
		return fmt.Errorf("unknown format %q (want ascii or json)", wordFormat)
	}
}

func runWords(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}

	for _, w := range eng.SearchWords(args[0]) {
		fmt.Fprintln(cmd.OutOrStdout(), w)
	}
	return nil
}
