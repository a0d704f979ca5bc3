package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <tasks.json>",
	Short: "Suggest the top tasks to work on next",
	Long: `Suggest reads a JSON array of tasks from the given file and prints the
top three tasks ranked by the smart balance score, with the score and an
explanation for each.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, cfg, err := buildAnalyzer(os.Stderr)
		if err != nil {
			return err
		}

		batch, err := loadBatch(args[0])
		if err != nil {
			return err
		}
		if fillDefaults {
			applyDefaults(batch, cfg.Analyzer)
		}

		result, err := analyzer.Suggest(cmd.Context(), batch)
		if err != nil {
			return fmt.Errorf("suggestion failed: %w", err)
		}

		if outputJSON {
			return printJSON(cmd.OutOrStdout(), suggestOutput{
				SuggestedTasks: result.Tasks,
				HasCycle:       result.Cycle.HasCycle,
				CycleNodes:     result.Cycle.CycleNodes,
				Note:           result.Note,
			})
		}
		printCycleWarning(cmd.ErrOrStderr(), result.Cycle)
		printTaskTable(cmd.OutOrStdout(), result.Tasks)
		fmt.Fprintln(cmd.OutOrStdout(), color.CyanString(result.Note))
		return nil
	},
}
