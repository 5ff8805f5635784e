package git

import (
	"context"
	"slices"
	"strings"
	"testing"
)

func TestDeleteLocalBranches(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	addMergedBranch(t, repo, "merged-1")
	addMergedBranch(t, repo, "merged-2")

	results := DeleteLocalBranches(testCtx(), repo, []string{"merged-1", "merged-2"})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if !r.Ok() {
			t.Errorf("deleting %s failed: %v", r.Branch, r.Err)
		}
	}

	branches, err := ListLocalBranches(testCtx(), repo)
	if err != nil {
		t.Fatalf("ListLocalBranches: %v", err)
	}
	if !slices.Equal(branches, []string{"master"}) {
		t.Errorf("remaining branches = %v, want [master]", branches)
	}
}

func TestDeleteLocalBranches_RejectsUnmerged(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	addMergedBranch(t, repo, "merged-1")
	addUnmergedBranch(t, repo, "in-progress")

	results := DeleteLocalBranches(testCtx(), repo, []string{"in-progress", "merged-1"})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// git refuses -d on the unmerged branch; the batch continues.
	if results[0].Ok() {
		t.Error("deleting an unmerged branch with -d should fail")
	}
	if !strings.Contains(results[0].Err.Error(), "not fully merged") {
		t.Errorf("error = %v, want git's not-fully-merged message", results[0].Err)
	}
	if !results[1].Ok() {
		t.Errorf("deleting merged-1 failed: %v", results[1].Err)
	}
}

func TestDeleteLocalBranches_CancelledContext(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	addMergedBranch(t, repo, "merged-1")
	addMergedBranch(t, repo, "merged-2")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := DeleteLocalBranches(ctx, repo, []string{"merged-1", "merged-2"})

	// The batch stops at the first cancelled attempt.
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Ok() {
		t.Error("cancelled deletion should not report success")
	}

	branches, err := ListLocalBranches(testCtx(), repo)
	if err != nil {
		t.Fatalf("ListLocalBranches: %v", err)
	}
	if !slices.Contains(branches, "merged-1") || !slices.Contains(branches, "merged-2") {
		t.Errorf("cancelled run must not delete anything, remaining = %v", branches)
	}
}

func TestDeleteRemoteBranches(t *testing.T) {
	t.Parallel()

	origin := setupTestRepo(t)
	addMergedBranch(t, origin, "feature-1")
	work := cloneRepo(t, origin)

	results := DeleteRemoteBranches(testCtx(), work, "origin", []string{"feature-1"})
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !results[0].Ok() {
		t.Fatalf("remote deletion failed: %v", results[0].Err)
	}

	branches, err := ListLocalBranches(testCtx(), origin)
	if err != nil {
		t.Fatalf("ListLocalBranches: %v", err)
	}
	if slices.Contains(branches, "feature-1") {
		t.Errorf("feature-1 still present on origin: %v", branches)
	}
}

func TestDeleteRemoteBranches_MissingBranch(t *testing.T) {
	t.Parallel()

	origin := setupTestRepo(t)
	work := cloneRepo(t, origin)

	results := DeleteRemoteBranches(testCtx(), work, "origin", []string{"does-not-exist"})
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Ok() {
		t.Error("deleting a nonexistent remote branch should fail")
	}
}
