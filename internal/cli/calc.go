package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var calcParams string

var calcCmd = &cobra.Command{
	Use:   "calc <id>",
	Short: "Run a calculator with JSON parameters",
	Example: `  nobra calc homa_ir --params '{"fasting_insulin": 10.5, "fasting_glucose": 95}'
  nobra calc wexner_score_ods --params '{"incontinence_solid_stool": 0, ...}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		entry, ok := registry.Default.Lookup(id)
		if !ok {
			return fmt.Errorf("unknown calculator %q (try \"nobra list\")", id)
		}

		var params score.Params
		if err := json.Unmarshal([]byte(calcParams), &params); err != nil {
			return fmt.Errorf("--params must be a JSON object: %w", err)
		}

		if err := score.Validate(entry.Metadata, params); err != nil {
			return fmt.Errorf("invalid parameters for %s: %w", id, err)
		}

		result, err := registry.Default.Calculate(id, params)
		if err != nil {
			return fmt.Errorf("calculating %s: %w", id, err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	calcCmd.Flags().StringVarP(&calcParams, "params", "p", "{}", "Calculator parameters as a JSON object")
	rootCmd.AddCommand(calcCmd)
}
