package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Command is a single external process invocation.
type Command struct {
	// Name is the executable name or path.
	Name string
	// Args are the arguments, excluding the executable.
	Args []string
	// Dir is the working directory. Empty means the caller's.
	Dir string
	// Env is the environment snapshot in KEY=VALUE form. Nil means the process
	// environment at the time the command starts.
	Env []string
}

// NewCommand builds a Command from an executable and its arguments.
func NewCommand(name string, args ...string) *Command {
	return &Command{Name: name, Args: args}
}

// Argv returns the full argument vector.
func (c *Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command for logs and error metadata.
func (c *Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// CommandResult is the captured outcome of a command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ExitError reports that a command run on behalf of the user exited non-zero.
// The CLI terminates with Code.
type ExitError struct {
	Command string
	Code    int
}

// Error implements error.
func (e *ExitError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("command exited with code %d", e.Code)
	}
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.Code)
}

// ExitCode returns the exit code carried by err if it wraps an ExitError.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
