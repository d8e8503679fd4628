// Command biospeak runs BioSpeak commands interactively or from scripts.
//
// Usage:
//
//	biospeak [command] [flags]
//
// Commands:
//
//	repl        Interactive shell (default)
//	run         Run script files
//	exec        Run one command
//	verify      Run the project self-check
//	config      Show or create the configuration file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aria-lang/biospeak-go/internal/config"
	"github.com/aria-lang/biospeak-go/internal/logging"
	"github.com/aria-lang/biospeak-go/pkg/biospeak"
)

// app carries what the persistent pre-run loads for the subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func (a *app) engine() *biospeak.Engine {
	return biospeak.NewEngine(biospeak.Options{Config: a.cfg, Logger: a.logger})
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "biospeak",
		Short:         "BioSpeak - plain-language bioinformatics commands",
		Long:          biospeak.Info(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log, a.verbose)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context(), a.engine(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./biospeak.yaml or $HOME/.biospeak/biospeak.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Start the interactive shell",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runREPL(cmd.Context(), a.engine(), cmd.InOrStdin(), cmd.OutOrStdout())
			},
		},
		newRunCmd(a),
		newExecCmd(a),
		newVerifyCmd(a),
		newConfigCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), biospeak.Version())
			},
		},
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
