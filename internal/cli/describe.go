package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var describeCmd = &cobra.Command{
	Use:   "describe <id>",
	Short: "Show a calculator's parameters and constraints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, ok := registry.Default.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown calculator %q (try \"nobra list\")", args[0])
		}

		m := entry.Metadata
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render(m.Title))
		fmt.Fprintf(out, "id: %s  category: %s\n", idStyle.Render(m.ID), categoryStyle.Render(m.Category))
		fmt.Fprintln(out, m.Description)
		fmt.Fprintln(out)
		fmt.Fprintln(out, headerStyle.Render("Parameters"))
		for _, ps := range m.Params {
			fmt.Fprintf(out, "  %-28s %-8s %s\n", ps.Name, ps.Type, constraintText(ps))
			if ps.Description != "" {
				fmt.Fprintf(out, "  %s\n", dimStyle.Render("  "+ps.Description))
			}
		}
		return nil
	},
}

func constraintText(ps score.ParamSpec) string {
	var parts []string
	if !ps.Required {
		parts = append(parts, "optional")
	}
	if ps.Min != nil && ps.Max != nil {
		parts = append(parts, fmt.Sprintf("range %v-%v", *ps.Min, *ps.Max))
	}
	if len(ps.Enum) > 0 {
		parts = append(parts, "one of "+strings.Join(ps.Enum, "|"))
	}
	if ps.Unit != "" {
		parts = append(parts, ps.Unit)
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
