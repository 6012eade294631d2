package git

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/Tannerbraithwaite/nightlog/internal/errors"
	"github.com/Tannerbraithwaite/nightlog/internal/logger"
)

// mockExecutor scripts git responses per subcommand and records every
// invocation.
type mockExecutor struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func newMockExecutor() *mockExecutor {
	return &mockExecutor{
		outputs: make(map[string]string),
		errs:    make(map[string]error),
	}
}

// subcommand extracts the git verb from ["git", "-C", path, verb, ...].
func subcommand(cmd *exec.Cmd) string {
	if len(cmd.Args) > 3 {
		return cmd.Args[3]
	}
	return ""
}

func (m *mockExecutor) Execute(cmd *exec.Cmd) error {
	verb := subcommand(cmd)
	m.calls = append(m.calls, strings.Join(cmd.Args[3:], " "))
	return m.errs[verb]
}

func (m *mockExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	verb := subcommand(cmd)
	m.calls = append(m.calls, strings.Join(cmd.Args[3:], " "))
	if err := m.errs[verb]; err != nil {
		return "", err
	}
	return m.outputs[verb], nil
}

func (m *mockExecutor) called(prefix string) bool {
	for _, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func newTestRepo(t *testing.T, m *mockExecutor) *Repository {
	t.Helper()
	return NewRepositoryWithExecutor(t.TempDir(), logger.New(false, ""), m)
}

func gitFailure(msg string) error {
	return errors.NewGitError("git", nil, errors.Wrap(errors.ErrGitOperationFailed, msg), "")
}

// ============================================================
// Repository checks
// ============================================================

func TestIsRepository(t *testing.T) {
	m := newMockExecutor()
	r := newTestRepo(t, m)

	if !r.IsRepository() {
		t.Fatal("expected IsRepository true when rev-parse succeeds")
	}

	m.errs["rev-parse"] = gitFailure("not a repo")
	if r.IsRepository() {
		t.Fatal("expected IsRepository false when rev-parse fails")
	}
}

func TestHasPendingChanges(t *testing.T) {
	m := newMockExecutor()
	r := newTestRepo(t, m)

	m.outputs["status"] = ""
	pending, err := r.HasPendingChanges()
	if err != nil {
		t.Fatal(err)
	}
	if pending {
		t.Fatal("clean status should report no pending changes")
	}

	m.outputs["status"] = " M time_data.json\n"
	pending, err = r.HasPendingChanges()
	if err != nil {
		t.Fatal(err)
	}
	if !pending {
		t.Fatal("dirty status should report pending changes")
	}
}

func TestHasPendingChangesError(t *testing.T) {
	m := newMockExecutor()
	m.errs["status"] = gitFailure("boom")
	r := newTestRepo(t, m)

	if _, err := r.HasPendingChanges(); !errors.Is(err, errors.ErrGitOperationFailed) {
		t.Fatalf("expected git operation error, got %v", err)
	}
}

// ============================================================
// Commit and push
// ============================================================

func TestCommitAndPush(t *testing.T) {
	m := newMockExecutor()
	m.outputs["remote"] = "origin\nupstream\n"
	m.outputs["branch"] = "work\n"
	r := newTestRepo(t, m)

	if err := r.CommitAndPush("Auto-commit: Time tracking update at 2024-01-01 20:00:00"); err != nil {
		t.Fatal(err)
	}

	if !m.called("add .") {
		t.Error("expected add .")
	}
	if !m.called("commit -m Auto-commit:") {
		t.Errorf("expected commit with message, calls: %v", m.calls)
	}
	// First remote, current branch.
	if !m.called("push origin work") {
		t.Errorf("expected push origin work, calls: %v", m.calls)
	}
}

func TestCommitAndPushDefaultBranch(t *testing.T) {
	m := newMockExecutor()
	m.outputs["remote"] = "origin\n"
	m.outputs["branch"] = "" // detached or unborn HEAD
	r := newTestRepo(t, m)

	if err := r.CommitAndPush("msg"); err != nil {
		t.Fatal(err)
	}
	if !m.called("push origin main") {
		t.Errorf("expected fallback to main, calls: %v", m.calls)
	}
}

func TestCommitAndPushNoRemote(t *testing.T) {
	m := newMockExecutor()
	m.outputs["remote"] = ""
	r := newTestRepo(t, m)

	if err := r.CommitAndPush("msg"); err != nil {
		t.Fatal(err)
	}
	if m.called("push") {
		t.Error("push should be skipped when no remote is configured")
	}
}

func TestCommitAndPushPushFailureNotFatal(t *testing.T) {
	m := newMockExecutor()
	m.outputs["remote"] = "origin\n"
	m.outputs["branch"] = "main\n"
	m.errs["push"] = gitFailure("network down")
	r := newTestRepo(t, m)

	// Push failure is reported but does not undo the local commit.
	if err := r.CommitAndPush("msg"); err != nil {
		t.Fatalf("push failure should not surface as error, got %v", err)
	}
	if !m.called("commit") {
		t.Error("commit should have run before the failed push")
	}
}

func TestCommitAndPushCommitFailure(t *testing.T) {
	m := newMockExecutor()
	m.errs["commit"] = gitFailure("hook rejected")
	r := newTestRepo(t, m)

	if err := r.CommitAndPush("msg"); !errors.Is(err, errors.ErrGitOperationFailed) {
		t.Fatalf("expected commit failure to surface, got %v", err)
	}
	if m.called("push") {
		t.Error("push should not run after a failed commit")
	}
}
