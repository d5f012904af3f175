package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var relatedFlag bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Search morphemes by form or meaning",
	Long:  "Matches forms by exact text or prefix first, then meanings and synonyms by substring.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var fragmentCmd = &cobra.Command{
	Use:   "root <id>",
	Short: "Show a single morpheme by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runFragment,
}

func init() {
	fragmentCmd.Flags().BoolVar(&relatedFlag, "related", false, "Include morphemes sharing example words")
}

func runLookup(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), eng.Search(args[0], langFlag))
}

func runFragment(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}

	id := args[0]
	if relatedFlag {
		result, ok := eng.LookupWithRelated(id, langFlag)
		if !ok {
			return fmt.Errorf("root %q not found", id)
		}
		return printJSON(cmd.OutOrStdout(), result)
	}

	view, ok := eng.Lookup(id, langFlag)
	if !ok {
		return fmt.Errorf("root %q not found", id)
	}
	return printJSON(cmd.OutOrStdout(), view)
}
