package git

import (
	"bytes"
	"os/exec"

	"github.com/Tannerbraithwaite/nightlog/internal/errors"
)

// CommandExecutor defines an interface for executing commands. It exists so
// tests can script git behavior without the real binary.
type CommandExecutor interface {
	// Execute runs a command, discarding its output.
	Execute(cmd *exec.Cmd) error

	// ExecuteWithOutput runs a command and returns its stdout.
	ExecuteWithOutput(cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default implementation of CommandExecutor that
// delegates to the os/exec package.
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements CommandExecutor.Execute.
func (e *ExecExecutor) Execute(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		op, args := splitArgs(cmd)
		wrapped := errors.Wrap(errors.ErrGitOperationFailed, err.Error())
		return errors.NewGitError(op, args, wrapped, stderr.String())
	}
	return nil
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput.
func (e *ExecExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		op, args := splitArgs(cmd)
		wrapped := errors.Wrap(errors.ErrGitOperationFailed, err.Error())
		return "", errors.NewGitError(op, args, wrapped, stderr.String())
	}
	return stdout.String(), nil
}

func splitArgs(cmd *exec.Cmd) (string, []string) {
	if len(cmd.Args) == 0 {
		return "", nil
	}
	return cmd.Args[0], cmd.Args[1:]
}
