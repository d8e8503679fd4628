package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aria-lang/biospeak-go/internal/config"
	"github.com/aria-lang/biospeak-go/internal/selftest"
	"github.com/aria-lang/biospeak-go/pkg/biospeak"
)

func newRunCmd(a *app) *cobra.Command {
	var keepGoing bool
	cmd := &cobra.Command{
		Use:   "run SCRIPT...",
		Short: "Run script files, one command per line",
		Long: `Runs each script in order against one shared workspace.
Blank lines, lines starting with # and lines starting with "note " are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := a.engine()
			var errs []error
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				a.logger.Debug("running script", zap.String("path", path))
				err = biospeak.RunScript(cmd.Context(), e, f, cmd.OutOrStdout(), keepGoing)
				f.Close()
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					if !keepGoing {
						break
					}
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "continue after a failed command")
	return cmd
}

func newExecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run a single command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.engine().HandleContext(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run the configured checks and the demo session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv(selftest.EnvMarker) != "" {
				return errors.New("already running inside a self check")
			}
			e := a.engine()
			res, verr := e.HandleContext(cmd.Context(), "verify project")
			if report, err := e.HandleContext(cmd.Context(), "show verification_report"); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), report.Message)
			}
			if verr != nil {
				return verr
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := a.cfg.YAML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "init [PATH]",
			Short: "Write the default configuration file",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := config.FileName
				if len(args) == 1 {
					path = args[0]
				}
				if err := config.WriteDefault(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			},
		},
	)
	return cmd
}
