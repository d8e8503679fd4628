package engine

import (
	"errors"

	"github.com/aria-lang/biospeak-go/internal/fileio"
	"github.com/aria-lang/biospeak-go/internal/workspace"
)

// ErrorKind classifies a failed command.
type ErrorKind int

const (
	// MalformedCommand means the text matched no template or lacked a connective.
	MalformedCommand ErrorKind = iota
	// ItemNotFound means a referenced name is not in the workspace.
	ItemNotFound
	// WrongItemKind means a name resolved to an item of the wrong kind.
	WrongItemKind
	// InvalidArgument means an operand was present but unusable.
	InvalidArgument
	// ExternalResource means a file or collaborator failed.
	ExternalResource
	// VerificationFailed means the self-check reported a FAIL line.
	VerificationFailed
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedCommand:
		return "malformed_command"
	case ItemNotFound:
		return "item_not_found"
	case WrongItemKind:
		return "wrong_item_kind"
	case InvalidArgument:
		return "invalid_argument"
	case ExternalResource:
		return "external_resource"
	case VerificationFailed:
		return "verification_failed"
	default:
		return "unknown"
	}
}

// CommandError is returned by Handle for every failed command. Message is
// meant for the user; Err, when set, is the underlying cause.
type CommandError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a *CommandError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

func newError(kind ErrorKind, msg string) *CommandError {
	return &CommandError{Kind: kind, Message: msg}
}

func malformed(template string) *CommandError {
	return newError(MalformedCommand, "Please say: "+template+".")
}

func invalid(msg string) *CommandError {
	return newError(InvalidArgument, msg)
}

// lookupError maps workspace lookup failures onto command errors.
func lookupError(err error) error {
	var nf *workspace.NotFoundError
	if errors.As(err, &nf) {
		return &CommandError{Kind: ItemNotFound, Message: "Item " + nf.Name + " is not loaded.", Err: err}
	}
	var wk *workspace.WrongKindError
	if errors.As(err, &wk) {
		return &CommandError{Kind: WrongItemKind, Message: "Item " + wk.Name + " is not a " + string(wk.Want) + ".", Err: err}
	}
	return err
}

// resourceError wraps file and collaborator failures.
func resourceError(err error) error {
	if err == nil {
		return nil
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		return err
	}
	msg := err.Error()
	var re *fileio.ResourceError
	if errors.As(err, &re) {
		msg = "Could not " + re.Op + " " + re.Path + ": " + re.Err.Error()
	}
	return &CommandError{Kind: ExternalResource, Message: msg, Err: err}
}
