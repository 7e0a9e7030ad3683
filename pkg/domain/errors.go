package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ErrInvalidArgument matches every *ArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Build-time causes.
var (
	ErrEmptyMenu              = errors.New("menu configuration cannot be empty")
	ErrEmptyCommand           = errors.New("command name cannot be empty")
	ErrLeafRequiresOperation  = errors.New("node without an operation requires child nodes")
	ErrOperationWithChildren  = errors.New("cannot have both an operation and child nodes")
	ErrLabelsRequireOperation = errors.New("completion labels are only allowed on nodes with an operation")
	ErrDuplicateCommand       = errors.New("multiple child nodes share the same command")
	ErrInvalidContract        = errors.New("invalid parameter contract")
	ErrInvalidChildren        = errors.New("children must be a list of labels, a list of nodes or a mapping")
	ErrUnknownReference       = errors.New("unknown reference")
	ErrUnsupportedHandler     = errors.New("unsupported handler type")
	ErrInvalidNode            = errors.New("invalid menu node")
)

// Run-time causes.
var (
	ErrUnterminatedQuote       = errors.New("no closing quote found")
	ErrInvalidKeyword          = errors.New("keyword argument is not a valid identifier")
	ErrReservedKeyword         = errors.New("keyword argument cannot be a reserved word")
	ErrPositionalAfterKeyword  = errors.New("positional argument follows keyword argument")
	ErrMoreArgumentsNeeded     = errors.New("more arguments needed")
	ErrSubcommandNotFound      = errors.New("subcommand not found")
	ErrPositionalOnlyAsKeyword = errors.New("positional-only argument passed as keyword")
	ErrKeywordRepeated         = errors.New("keyword argument repeated")
	ErrUnexpectedKeyword       = errors.New("unexpected keyword argument")
	ErrMultipleValues          = errors.New("multiple values for argument")
	ErrTooManyPositional       = errors.New("too many positional arguments")
	ErrMissingPositional       = errors.New("missing positional arguments")
	ErrMissingKeywordOnly      = errors.New("missing keyword-only arguments")
)

// ConfigError is returned while building a menu from a malformed configuration.
type ConfigError struct {
	Command string // Command of the offending node, empty for the menu itself
	Err     error  // One of the build-time sentinels
	Detail  string // Optional extra context
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Command == "" {
		return fmt.Sprintf("configuration error: %s", msg)
	}
	return fmt.Sprintf("configuration error in '%s': %s", e.Command, msg)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

// ArgumentError is returned while running a command line that cannot be dispatched.
type ArgumentError struct {
	Err    error  // One of the run-time sentinels
	Detail string // Human-readable message, defaults to Err's text
}

// NewArgumentError builds an ArgumentError with a formatted detail message.
func NewArgumentError(cause error, format string, args ...any) *ArgumentError {
	return &ArgumentError{Err: cause, Detail: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid argument: %s", e.Err)
	}
	return fmt.Sprintf("invalid argument: %s", e.Detail)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
