// Package engine interprets BioSpeak commands against a workspace.
//
// Each call to Handle is a transaction: referenced items are looked up,
// new items are built locally, and the workspace is only written once the
// whole command has succeeded. The engine is not safe for concurrent use.
package engine

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aria-lang/biospeak-go/internal/filemap"
	"github.com/aria-lang/biospeak-go/internal/integration"
	"github.com/aria-lang/biospeak-go/internal/workspace"
)

// Result is the outcome of a successful command.
type Result struct {
	Message string
	Created []string
	Verb    string
	// Exit is set for the session-ending words. It is a signal, not an error.
	Exit bool
}

// SelfChecker runs the project verification used by "verify project".
// Lines starting with FAIL mark failures.
type SelfChecker interface {
	RunSelfTests(ctx context.Context) []string
}

// FileMapper lists project files for "make file map".
type FileMapper interface {
	Lines() ([]string, error)
}

// Observer is told about every handled command. Outcome is "ok", "exit" or
// the error kind.
type Observer interface {
	ObserveCommand(verb, outcome string, elapsed time.Duration)
}

// Engine dispatches command text to handlers.
type Engine struct {
	ws       *workspace.Workspace
	caps     integration.Capabilities
	logger   *zap.Logger
	checker  SelfChecker
	files    FileMapper
	observer Observer
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkspace uses ws instead of a new empty workspace.
func WithWorkspace(ws *workspace.Workspace) Option {
	return func(e *Engine) { e.ws = ws }
}

// WithCapabilities sets the integration layer.
func WithCapabilities(c integration.Capabilities) Option {
	return func(e *Engine) { e.caps = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithSelfChecker sets the collaborator behind "verify project".
func WithSelfChecker(c SelfChecker) Option {
	return func(e *Engine) { e.checker = c }
}

// WithFileMapper sets the collaborator behind "make file map".
func WithFileMapper(m FileMapper) Option {
	return func(e *Engine) { e.files = m }
}

// WithObserver registers a command observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// New returns an engine. Without options it uses an empty workspace, the
// built-in integration fallback, a no-op logger and a file map of the
// current directory.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.ws == nil {
		e.ws = workspace.New()
	}
	if e.caps == nil {
		e.caps = integration.Fallback{}
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.files == nil {
		e.files = filemap.New(filemap.Options{Root: "."})
	}
	return e
}

// Workspace returns the engine's workspace.
func (e *Engine) Workspace() *workspace.Workspace {
	return e.ws
}

// Handle runs one command.
func (e *Engine) Handle(text string) (Result, error) {
	return e.HandleContext(context.Background(), text)
}

// HandleContext runs one command. ctx only bounds collaborators that run
// external work, such as the self-check.
func (e *Engine) HandleContext(ctx context.Context, text string) (Result, error) {
	start := time.Now()
	text = strings.TrimSpace(text)

	res, err := e.dispatch(ctx, text)

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
		if kind, ok := KindOf(err); ok {
			outcome = kind.String()
		}
		e.logger.Info("command failed",
			zap.String("verb", res.Verb),
			zap.String("kind", outcome),
			zap.Error(err))
	case res.Exit:
		outcome = "exit"
	default:
		e.logger.Debug("command handled",
			zap.String("verb", res.Verb),
			zap.Duration("elapsed", time.Since(start)),
			zap.Strings("created", res.Created))
	}
	if e.observer != nil {
		verb := res.Verb
		if verb == "" {
			verb = "unknown"
		}
		e.observer.ObserveCommand(verb, outcome, time.Since(start))
	}
	return res, err
}

// change is what a handler wants applied to the workspace.
type change struct {
	message string
	items   []workspace.Item
	clear   bool
	exit    bool
}

func (e *Engine) dispatch(ctx context.Context, text string) (Result, error) {
	if text == "" {
		return Result{}, newError(MalformedCommand, "Please speak a command.")
	}

	r, rest, ok := match(text)
	if !ok {
		return Result{}, unknownCommand(text)
	}
	res := Result{Verb: r.verb}

	var args []string
	if !r.exact {
		var err error
		if args, err = splitOperands(rest, r.splits, r.template); err != nil {
			return res, err
		}
	}

	ch, err := r.run(e, &call{ctx: ctx, rest: strings.TrimSpace(rest), args: args, template: r.template})
	if err != nil {
		return res, err
	}

	if ch.clear {
		e.ws.Clear()
	}
	res.Created = make([]string, 0, len(ch.items))
	for _, item := range ch.items {
		e.ws.Add(item)
		res.Created = append(res.Created, item.ItemName())
	}
	res.Message = ch.message
	res.Exit = ch.exit
	return res, nil
}

func (e *Engine) item(name string) (workspace.Item, error) {
	item, err := e.ws.Get(name)
	if err != nil {
		return nil, lookupError(err)
	}
	return item, nil
}

func (e *Engine) sequence(name string) (*workspace.Sequence, error) {
	seq, err := e.ws.Sequence(name)
	if err != nil {
		return nil, lookupError(err)
	}
	return seq, nil
}

func (e *Engine) table(name string) (*workspace.Table, error) {
	tbl, err := e.ws.Table(name)
	if err != nil {
		return nil, lookupError(err)
	}
	return tbl, nil
}

func message(msg string, items ...workspace.Item) (*change, error) {
	return &change{message: msg, items: items}, nil
}
