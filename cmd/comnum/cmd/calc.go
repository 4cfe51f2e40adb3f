package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/idmagic/comnum/foundation/core/log"
	"github.com/idmagic/comnum/foundation/utils/mathx"
	"github.com/idmagic/comnum/internal/calc"
)

var calcFlags struct {
	re, im   float64
	bRe, bIm float64
	n        string
	digits   int
}

var calcCmd = &cobra.Command{
	Use:   "calc <operation>",
	Short: "Evaluate a single operation",
	Long: `Evaluates one named operation on a = re + im*i and, for binary
operations, b = b-re + b-im*i. Run "comnum ops" for the list of operations.

The exponent --n of pow and powmul must be an integer. Anything that reads
as a floating-point number, 4.0 included, is rejected.

Examples:
  comnum calc add --re 1 --im 2 --b-re 3 --b-im 4
  comnum calc pow --re 1 --im 2 --n -3
  comnum calc round --re 3.14159 --digits 2`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return usageError(cmd, args, "exactly one operation name")
		}
		return nil
	},
	RunE: runCalc,
}

func init() {
	f := calcCmd.Flags()
	f.Float64Var(&calcFlags.re, "re", 0, "real part of a")
	f.Float64Var(&calcFlags.im, "im", 0, "imaginary part of a")
	f.Float64Var(&calcFlags.bRe, "b-re", 0, "real part of b")
	f.Float64Var(&calcFlags.bIm, "b-im", 0, "imaginary part of b")
	f.StringVar(&calcFlags.n, "n", "", "integer exponent for pow and powmul")
	f.IntVar(&calcFlags.digits, "digits", 0, "decimal digits for round")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	registry, err := calc.NewRegistry(calc.Options{Logger: logger})
	if err != nil {
		return err
	}

	name := args[0]
	in := calc.Input{
		A:      mathx.New(calcFlags.re, calcFlags.im),
		B:      mathx.New(calcFlags.bRe, calcFlags.bIm),
		N:      calcFlags.n,
		Digits: calcFlags.digits,
	}

	logger.Debug("evaluating operation", mdwlog.Fields{
		"operation": name,
		"a":         in.A.String(),
		"b":         in.B.String(),
		"n":         in.N,
	})

	timer := logger.StartTimer("calc " + name)
	result, err := registry.Eval(name, in)
	if err != nil {
		timer.Cancel()
		return err
	}
	timer.Stop()

	fmt.Fprintln(cmd.OutOrStdout(), result.Format(appConfig.Display.Precision))
	return nil
}
