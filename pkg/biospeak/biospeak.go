// Package biospeak is the public entry point for embedding the BioSpeak
// command engine.
//
// Example usage:
//
//	e := biospeak.NewEngine(biospeak.Options{Config: config.Default()})
//	res, err := e.Handle("load dna text ATGGCC as demo")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Message)
package biospeak

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aria-lang/biospeak-go/internal/config"
	"github.com/aria-lang/biospeak-go/internal/engine"
	"github.com/aria-lang/biospeak-go/internal/filemap"
	"github.com/aria-lang/biospeak-go/internal/integration"
	"github.com/aria-lang/biospeak-go/internal/integration/gonum"
	"github.com/aria-lang/biospeak-go/internal/selftest"
)

// Re-export types for convenience
type (
	Engine    = engine.Engine
	Result    = engine.Result
	ErrorKind = engine.ErrorKind
	Config    = config.Config
)

const (
	MalformedCommand   = engine.MalformedCommand
	ItemNotFound       = engine.ItemNotFound
	WrongItemKind      = engine.WrongItemKind
	InvalidArgument    = engine.InvalidArgument
	ExternalResource   = engine.ExternalResource
	VerificationFailed = engine.VerificationFailed
)

// KindOf reports the kind of a command error.
func KindOf(err error) (ErrorKind, bool) {
	return engine.KindOf(err)
}

type Options struct {
	Config   config.Config
	Logger   *zap.Logger
	Observer engine.Observer
}

// Capabilities builds the integration registry enabled by cfg.
func Capabilities(cfg config.IntegrationsConfig) *integration.Registry {
	reg := integration.NewRegistry()
	if cfg.GonumStats {
		reg.Register(gonum.Stats{})
	}
	if cfg.GonumPlot {
		reg.Register(gonum.NewPlotter())
	}
	return reg
}

// NewEngine returns an engine wired with the configured integrations, file
// map and self-check.
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := opts.Config

	engineOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithCapabilities(Capabilities(cfg.Integrations)),
		engine.WithFileMapper(filemap.New(filemap.Options{
			Root:    cfg.FileMap.Root,
			Exclude: cfg.FileMap.Exclude,
		})),
		engine.WithSelfChecker(selftest.New(selftest.Options{
			Commands: cfg.SelfTest.Commands,
			Dir:      cfg.FileMap.Root,
			Timeout:  cfg.SelfTest.Timeout,
			Logger:   logger.Named("selftest"),
		})),
	}
	if opts.Observer != nil {
		engineOpts = append(engineOpts, engine.WithObserver(opts.Observer))
	}
	return engine.New(engineOpts...)
}

// ScriptError is a failed script command. Step counts commands, not
// source lines.
type ScriptError struct {
	Step    int
	Command string
	Err     error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("step %d: %s: %v", e.Step, e.Command, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// RunScript runs each command of script through e and writes the replies
// to out. It stops at the first failure unless keepGoing is set, in which
// case all failures are joined. An exit word ends the script early.
func RunScript(ctx context.Context, e *Engine, script io.Reader, out io.Writer, keepGoing bool) error {
	raw, err := io.ReadAll(script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	var errs []error
	for i, line := range engine.ScriptLines(string(raw)) {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(out, "> %s\n", line)
		res, err := e.HandleContext(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "Error: %s\n", err)
			errs = append(errs, &ScriptError{Step: i + 1, Command: line, Err: err})
			if !keepGoing {
				break
			}
			continue
		}
		fmt.Fprintln(out, res.Message)
		if res.Exit {
			break
		}
	}
	return errors.Join(errs...)
}

// Version returns the BioSpeak version.
func Version() string {
	return "1.0.0"
}

// Info returns information about BioSpeak.
func Info() string {
	return fmt.Sprintf(`BioSpeak v%s - plain-language bioinformatics commands

Say "help" in the shell to list every command.
`, Version())
}
