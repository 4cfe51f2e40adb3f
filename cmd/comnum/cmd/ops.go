package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idmagic/comnum/internal/calc"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operations known to calc",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := calc.NewRegistry(calc.Options{Logger: logger})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s %-10s %-20s %s\n", "NAME", "OPERANDS", "ALIASES", "DESCRIPTION")
		for _, op := range registry.Operations() {
			fmt.Fprintf(out, "%-8s %-10s %-20s %s\n", op.Name, operands(op), strings.Join(op.Aliases, ", "), op.Summary)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}

func operands(op *calc.Operation) string {
	parts := []string{"a"}
	if op.Binary {
		parts = append(parts, "b")
	}
	if op.NeedsExponent {
		parts = append(parts, "n")
	}
	if op.NeedsDigits {
		parts = append(parts, "digits")
	}
	return strings.Join(parts, ",")
}
