package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// gitOut runs a git command in dir and fails the test on error.
func gitOut(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo with an initial commit on master.
// Returns the absolute path to the repo (with symlinks resolved).
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	gitOut(t, dir, "init", "--initial-branch=master")
	gitOut(t, dir, "config", "user.email", "test@test.com")
	gitOut(t, dir, "config", "user.name", "Test User")
	gitOut(t, dir, "config", "commit.gpgsign", "false")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	gitOut(t, dir, "add", "README.md")
	gitOut(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// addMergedBranch creates a branch pointing at the current master tip, so it
// is fully merged by construction.
func addMergedBranch(t *testing.T, repo, name string) {
	t.Helper()
	gitOut(t, repo, "branch", name, "master")
}

// addUnmergedBranch creates a branch with a commit of its own that master
// does not contain.
func addUnmergedBranch(t *testing.T, repo, name string) {
	t.Helper()
	gitOut(t, repo, "checkout", "-b", name)
	f := filepath.Join(repo, name+".txt")
	if err := os.WriteFile(f, []byte(name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	gitOut(t, repo, "add", ".")
	gitOut(t, repo, "commit", "-m", "work on "+name)
	gitOut(t, repo, "checkout", "master")
}

// cloneRepo clones src into a fresh temp dir, making src the "origin" remote.
func cloneRepo(t *testing.T, src string) string {
	t.Helper()

	parent, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	dst := filepath.Join(parent, "clone")
	gitOut(t, parent, "clone", src, dst)
	gitOut(t, dst, "config", "user.email", "test@test.com")
	gitOut(t, dst, "config", "user.name", "Test User")
	return dst
}

func testCtx() context.Context {
	return context.Background()
}
