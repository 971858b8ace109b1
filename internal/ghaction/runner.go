// SPDX-License-Identifier: MPL-2.0

package ghaction

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sethvargo/go-githubactions"
)

// Runner file command variables.
const (
	EnvOutputFile  = "GITHUB_OUTPUT"
	EnvEnvFile     = "GITHUB_ENV"
	EnvSummaryFile = "GITHUB_STEP_SUMMARY"
)

// FileCommandDelimiter is the heredoc delimiter go-githubactions writes around
// every output and variable value.
const FileCommandDelimiter = "_GitHubActionsFileCommandDelimeter_"

const setEnvCmd = "set-env"

// ErrDelimiterCollision is returned when a value contains the heredoc delimiter.
var ErrDelimiterCollision = errors.New("value contains the heredoc delimiter")

// Runner publishes through the GitHub Actions runner.
type Runner struct {
	// Getenv looks up the runner's file command variables.
	Getenv func(string) string
	// Setenv updates the current process environment for exported variables.
	Setenv func(key, value string) error
	// Stdout receives workflow commands when no file command is available.
	Stdout io.Writer
}

// NewRunner creates a Runner bound to the process environment and stdout.
func NewRunner() *Runner {
	return &Runner{
		Getenv: os.Getenv,
		Setenv: os.Setenv,
		Stdout: os.Stdout,
	}
}

func (r *Runner) action() *githubactions.Action {
	return githubactions.New(
		githubactions.WithGetenv(r.Getenv),
		githubactions.WithWriter(r.Stdout),
	)
}

// SetOutputs implements Publisher. The whole batch is validated before the
// first entry is written.
func (r *Runner) SetOutputs(entries ...Entry) error {
	if err := validateBatch(entries); err != nil {
		return err
	}

	a := r.action()
	fileCommand := r.Getenv(EnvOutputFile) != ""
	return publish(entries, func(e Entry) {
		if fileCommand {
			a.SetOutput(e.Name, e.Value)
			return
		}
		a.IssueCommand(&githubactions.Command{
			Name:       "set-output",
			Properties: githubactions.CommandProperties{"name": e.Name},
			Message:    e.Value,
		})
	})
}

// ExportVariables implements Publisher. Variables are also set in the current
// process so that work done later in this invocation observes them.
func (r *Runner) ExportVariables(entries ...Entry) error {
	if err := validateBatch(entries); err != nil {
		return err
	}
	for _, e := range entries {
		if err := r.Setenv(e.Name, e.Value); err != nil {
			return fmt.Errorf("set %s: %w", e.Name, err)
		}
	}

	a := r.action()
	fileCommand := r.Getenv(EnvEnvFile) != ""
	return publish(entries, func(e Entry) {
		if fileCommand {
			a.SetEnv(e.Name, e.Value)
			return
		}
		a.IssueCommand(&githubactions.Command{
			Name:       setEnvCmd,
			Properties: githubactions.CommandProperties{"name": e.Name},
			Message:    e.Value,
		})
	})
}

// AppendSummary appends markdown to the job summary. It reports false when the
// runner provides no summary file.
func (r *Runner) AppendSummary(markdown string) (written bool, err error) {
	if r.Getenv(EnvSummaryFile) == "" {
		return false, nil
	}
	defer recoverFileCommand(EnvSummaryFile, &err)

	r.action().AddStepSummary(markdown)
	return true, nil
}

func validateBatch(entries []Entry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}
	for _, e := range entries {
		if strings.Contains(e.Name, FileCommandDelimiter) || strings.Contains(e.Value, FileCommandDelimiter) {
			return fmt.Errorf("%s: %w", e.Name, ErrDelimiterCollision)
		}
	}
	return nil
}

// publish writes every entry in order. go-githubactions panics when a file
// command cannot be written; the panic is returned as an error naming the
// entry it stopped at.
func publish(entries []Entry, write func(Entry)) error {
	for _, e := range entries {
		if err := writeEntry(e, write); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(e Entry, write func(Entry)) (err error) {
	defer recoverFileCommand(e.Name, &err)
	write(e)
	return nil
}

func recoverFileCommand(what string, err *error) {
	if v := recover(); v != nil {
		if cause, ok := v.(error); ok {
			*err = fmt.Errorf("write %s: %w", what, cause)
			return
		}
		*err = fmt.Errorf("write %s: %v", what, v)
	}
}
