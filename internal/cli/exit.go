package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AttuneLearning/agent-workflow/internal/install"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitTargetExists = 3
)

// ExitError carries a specific exit status to main. Err may be nil when the
// command already reported the problem.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var unknown *install.UnknownTeamError
	if errors.As(err, &unknown) || errors.Is(err, install.ErrNoTeam) {
		return ExitUsage
	}
	var conflict *install.TargetConflictError
	if errors.As(err, &conflict) {
		return ExitTargetExists
	}
	return ExitFailure
}

// PrintError writes err to w unless it carries no message.
func PrintError(w io.Writer, err error) {
	if err == nil || err.Error() == "" {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
