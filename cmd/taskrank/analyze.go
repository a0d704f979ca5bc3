package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/taskrank-api/internal/domain/rank"
)

var strategyName string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <tasks.json>",
	Short: "Rank tasks from a JSON file using a prioritization strategy",
	Long: `Analyze reads a JSON array of tasks from the given file, validates each
task, detects circular dependencies, and prints the batch ordered by the
chosen strategy (fastest, high_impact, deadline, smart).`,
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

		result, err := analyzer.Analyze(cmd.Context(), batch, rank.ParseStrategy(strategyName))
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		if outputJSON {
			return printJSON(cmd.OutOrStdout(), analyzeOutput{
				Tasks:      result.Tasks,
				HasCycle:   result.Cycle.HasCycle,
				CycleNodes: result.Cycle.CycleNodes,
			})
		}
		printCycleWarning(cmd.ErrOrStderr(), result.Cycle)
		printTaskTable(cmd.OutOrStdout(), result.Tasks)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&strategyName, "strategy", "s", string(rank.StrategySmart),
		"ranking strategy: fastest, high_impact, deadline, smart")
}
