package cmd

import (
	"github.com/spf13/cobra"

	mdwerrors "github.com/idmagic/comnum/foundation/core/errors"
	mdwlog "github.com/idmagic/comnum/foundation/core/log"
	"github.com/idmagic/comnum/internal/demo"
)

var demoPlain bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the demonstration scenario",
	Long: `Runs a fixed sequence of operations on the operands a = 1 + 2i and
b = 3 - 4i (overridable in the [demo] section of the configuration) and
prints every result on its own line. The last step passes a non-integer
exponent and shows the resulting error.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&demoPlain, "plain", false, "print without styling")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	timer := logger.StartTimer("demo")

	lines := demo.FromConfig(appConfig.Demo).Run()

	failed := 0
	for _, line := range lines {
		if line.Failed() {
			failed++
		}
	}

	styled := appConfig.Display.Styled && !demoPlain
	renderer := demo.NewRenderer(styled, appConfig.Display.Precision)
	if err := renderer.Render(cmd.OutOrStdout(), lines); err != nil {
		timer.StopWithError(err)
		return mdwerrors.OperationFailed(mdwerrors.ModuleCLI, "render", err)
	}

	timer.WithField("steps", len(lines)).WithField("failed_steps", failed).Stop()
	logger.Debug("demo rendered", mdwlog.Fields{"styled": styled})
	return nil
}
