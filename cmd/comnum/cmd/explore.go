package cmd

import (
	"github.com/spf13/cobra"

	"github.com/idmagic/comnum/internal/tui/explorer"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Start the interactive explorer",
	Long: `Starts a terminal UI with inputs for the operands a and b, the
exponent n and the rounding digits. Every operation known to calc is
re-evaluated as you type.

Navigation:
  Tab / Shift+Tab  - move between inputs
  Esc / Ctrl+C     - quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := explorer.New(explorer.Options{
			Operands:  appConfig.Demo,
			Precision: appConfig.Display.Precision,
			Logger:    logger,
		})
		if err != nil {
			return err
		}
		return explorer.Run(m)
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
