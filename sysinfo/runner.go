package sysinfo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner runs an external command and returns its standard output with the
// trailing newline trimmed. A command that cannot be run yields "".
type Runner interface {
	Run(ctx context.Context, name string, args ...string) string
}

// CommandError records a command that could not produce output.
type CommandError struct {
	Name string
	Args []string
	Err  error
}

func (e *CommandError) Error() string {
	cmd := strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
	return fmt.Sprintf("command %q failed: %v", cmd, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands with os/exec. There is no timeout: a command that
// never exits holds up the report until ctx is cancelled.
type ExecRunner struct {
	// OnError, when set, receives failures before "" is returned.
	OnError func(err *CommandError)
}

// Run executes name with args. Output produced by a command that exits with a
// non-zero status is still returned; only a command that produced nothing is
// reported as a failure.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) string {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	out := strings.TrimRight(stdout.String(), "\n")
	if err != nil && out == "" {
		if r.OnError != nil {
			r.OnError(&CommandError{Name: name, Args: args, Err: err})
		}
		return ""
	}
	return out
}
