package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwerror "github.com/idmagic/comnum/foundation/core/error"
	mdwerrors "github.com/idmagic/comnum/foundation/core/errors"
	mdwlog "github.com/idmagic/comnum/foundation/core/log"
	"github.com/idmagic/comnum/pkg/core/config"
	"github.com/idmagic/comnum/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	appConfig = config.Default()
	logger    = mdwlog.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "comnum",
	Short: "comnum - complex number toolkit",
	Long: `comnum demonstrates and evaluates operations on complex numbers.

Commands:
  demo     - run the demonstration scenario
  calc     - evaluate a single operation
  ops      - list the operations known to calc
  explore  - interactive explorer
  version  - print version information

Configuration is read from --config, $COMNUM_CONFIG, ./configs/comnum.toml,
./comnum.toml or ~/.config/comnum/config.toml, in that order.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text, logfmt or console")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, cmd.Name(), err.Error(), "valid flags, see --help")
	})
}

// setup loads the configuration and builds the logger for the command
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}

	if logFormat != "" {
		if _, err := mdwlog.ParseFormat(logFormat); err != nil {
			return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "log-format", logFormat, "json, text, logfmt or console")
		}
		cfg.General.LogFormat = logFormat
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}

	appConfig = cfg
	logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName: "comnum",
		Level:       cfg.General.LogLevel,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	}).WithCommand(cmd.Name())

	logger.Debug("configuration loaded", mdwlog.Fields{
		"path":      cfg.Path,
		"precision": cfg.Display.Precision,
		"styled":    cfg.Display.Styled,
	})

	return nil
}

// ReportError prints err to w and logs it with its code and details
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "comnum: %s\n", mdwerrors.Describe(err))
	logger.LogError(err)
}

// ExitCode returns the process exit status for err
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Code().ExitCode()
	}
	return 1
}

func usageError(cmd *cobra.Command, input interface{}, expected string) error {
	return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, cmd.Name(), input, expected)
}
