// Package selftest implements "verify project": it runs the configured
// check commands and then replays a demo session through a fresh engine.
package selftest

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aria-lang/biospeak-go/internal/engine"
)

// EnvMarker is set in the environment of every check command so a check
// that starts BioSpeak itself can avoid recursing into verification.
const EnvMarker = "BIOSPEAK_SELFTEST"

const (
	defaultTimeout = 2 * time.Minute
	maxParallel    = 4
)

//go:embed demo.bs
var demoScript string

// DemoScript returns the embedded demo session.
func DemoScript() string { return demoScript }

type Options struct {
	// Commands are argv lists run from Dir.
	Commands [][]string
	Dir      string
	// Timeout bounds each command.
	Timeout time.Duration
	// Demo replaces the embedded demo script. A blank script skips the demo.
	Demo   *string
	Logger *zap.Logger
}

type Runner struct {
	opts Options
}

func New(opts Options) *Runner {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Runner{opts: opts}
}

// RunSelfTests satisfies engine.SelfChecker.
func (r *Runner) RunSelfTests(ctx context.Context) []string {
	return r.Run(ctx)
}

// Run returns the report lines. Each check contributes a "PASS cmd" or
// "FAIL cmd" line followed by its indented output.
func (r *Runner) Run(ctx context.Context) []string {
	results := make([][]string, len(r.opts.Commands))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, argv := range r.opts.Commands {
		g.Go(func() error {
			results[i] = r.runCommand(gctx, argv)
			return nil
		})
	}
	_ = g.Wait()

	var lines []string
	for _, block := range results {
		lines = append(lines, block...)
	}
	demo := demoScript
	if r.opts.Demo != nil {
		demo = *r.opts.Demo
	}
	if strings.TrimSpace(demo) != "" {
		lines = append(lines, r.runDemo(ctx, demo)...)
	}
	return lines
}

func (r *Runner) runCommand(ctx context.Context, argv []string) []string {
	label := strings.Join(argv, " ")
	if len(argv) == 0 {
		return []string{"FAIL (empty command)"}
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.opts.Dir
	cmd.Env = append(os.Environ(), EnvMarker+"=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.opts.Logger.Debug("self check finished",
		zap.String("command", label),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))

	status := "PASS"
	if err != nil {
		status = "FAIL"
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || ctx.Err() != nil {
			// The process never ran or was killed; say why.
			if ctx.Err() != nil {
				err = ctx.Err()
			}
			stderr.WriteString("\n" + err.Error())
		}
	}

	lines := []string{status + " " + label}
	for _, line := range outputLines(stdout.String()) {
		lines = append(lines, "  "+line)
	}
	for _, line := range outputLines(stderr.String()) {
		lines = append(lines, "  stderr: "+line)
	}
	return lines
}

func (r *Runner) runDemo(ctx context.Context, script string) []string {
	e := engine.New(engine.WithLogger(r.opts.Logger.Named("demo")))
	var failures []string
	steps := engine.ScriptLines(script)
	for _, line := range steps {
		if _, err := e.HandleContext(ctx, line); err != nil {
			failures = append(failures, "  "+line+": "+err.Error())
		}
	}
	if len(failures) > 0 {
		return append([]string{"FAIL demo script"}, failures...)
	}
	return []string{"PASS demo script", fmt.Sprintf("  %d command(s) completed", len(steps))}
}

func outputLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimRight(line, " \t\r"); line != "" {
			out = append(out, line)
		}
	}
	return out
}
