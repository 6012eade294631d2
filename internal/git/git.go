// Package git shells out to the git binary to commit and push the data
// file. Every failure here is reported and swallowed upstream: a missing
// binary, absent repository or dead remote must never break time tracking.
package git

import (
	"os/exec"
	"strings"

	"github.com/Tannerbraithwaite/nightlog/internal/errors"
	"github.com/Tannerbraithwaite/nightlog/internal/logger"
)

// DefaultBranch is used when the current branch cannot be detected, e.g.
// on a repository with no commits yet.
const DefaultBranch = "main"

// Repository wraps git operations against a single working directory.
type Repository struct {
	path     string
	executor CommandExecutor
	log      logger.Logger
}

// NewRepository creates a Repository for the given path with the default
// executor.
func NewRepository(path string, log logger.Logger) *Repository {
	return NewRepositoryWithExecutor(path, log, NewExecExecutor())
}

// NewRepositoryWithExecutor creates a Repository with a custom executor.
func NewRepositoryWithExecutor(path string, log logger.Logger, executor CommandExecutor) *Repository {
	return &Repository{
		path:     path,
		executor: executor,
		log:      log,
	}
}

// IsRepository reports whether the path is inside a git work tree. A
// missing git binary also reports false, which silently disables all
// commit behavior.
func (r *Repository) IsRepository() bool {
	return r.run("rev-parse", "--is-inside-work-tree") == nil
}

// HasPendingChanges reports whether the work tree contains changes that
// have not been committed yet.
func (r *Repository) HasPendingChanges() (bool, error) {
	output, err := r.runWithOutput("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

// CommitAndPush stages all changes, commits with the given message and
// attempts to push. A failed push is logged but does not undo the local
// commit and does not surface as an error.
func (r *Repository) CommitAndPush(message string) error {
	if err := r.run("add", "."); err != nil {
		if errors.Is(err, errors.ErrGitOperationFailed) {
			return err
		}
		return errors.Wrap(errors.ErrGitOperationFailed, "failed to stage changes")
	}

	if err := r.run("commit", "-m", message); err != nil {
		if errors.Is(err, errors.ErrGitOperationFailed) {
			return err
		}
		return errors.Wrap(errors.ErrGitOperationFailed, "failed to create commit")
	}

	if err := r.push(); err != nil {
		if errors.Is(err, errors.ErrNoRemote) {
			r.log.Info("no remote configured, skipping push")
		} else {
			r.log.Warning("push failed, commit kept locally: %v", err)
		}
	}
	return nil
}

// push sends new commits to the first configured remote on the current
// branch.
func (r *Repository) push() error {
	remote, err := r.firstRemote()
	if err != nil {
		return err
	}

	branch, err := r.currentBranch()
	if err != nil || branch == "" {
		branch = DefaultBranch
	}

	return r.run("push", remote, branch)
}

// firstRemote returns the first configured remote name, or ErrNoRemote.
func (r *Repository) firstRemote() (string, error) {
	output, err := r.runWithOutput("remote")
	if err != nil {
		return "", err
	}
	remotes := strings.Fields(output)
	if len(remotes) == 0 {
		return "", errors.ErrNoRemote
	}
	return remotes[0], nil
}

// currentBranch returns the checked-out branch name.
func (r *Repository) currentBranch() (string, error) {
	output, err := r.runWithOutput("branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

func (r *Repository) run(args ...string) error {
	cmd := exec.Command("git", append([]string{"-C", r.path}, args...)...)
	cmd.Dir = r.path
	return r.executor.Execute(cmd)
}

func (r *Repository) runWithOutput(args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", r.path}, args...)...)
	cmd.Dir = r.path
	return r.executor.ExecuteWithOutput(cmd)
}
