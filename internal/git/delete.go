package git

import (
	"context"
)

// DeleteResult holds the outcome of one delete attempt.
type DeleteResult struct {
	Branch string
	Err    error
}

// Ok reports whether the deletion succeeded.
func (r DeleteResult) Ok() bool {
	return r.Err == nil
}

// DeleteLocalBranches deletes the named local branches one by one, returning
// a per-branch result in input order. It uses `git branch -d` (not -D) so git
// itself rejects a branch that turns out not to be fully merged. A cancelled
// context stops the batch; branches after the cancellation point are never
// attempted.
func DeleteLocalBranches(ctx context.Context, dir string, names []string) []DeleteResult {
	results := make([]DeleteResult, 0, len(names))
	for _, name := range names {
		err := runGit(ctx, dir, "branch", "-d", name)
		results = append(results, DeleteResult{Branch: name, Err: err})
		if ctx.Err() != nil {
			break
		}
	}
	return results
}

// DeleteRemoteBranches deletes the named branches on the remote one by one,
// returning a per-branch result in input order. Per-branch pushes keep one
// rejected deletion from aborting the rest of the batch.
func DeleteRemoteBranches(ctx context.Context, dir, remote string, names []string) []DeleteResult {
	results := make([]DeleteResult, 0, len(names))
	for _, name := range names {
		err := runGit(ctx, dir, "push", remote, "--delete", name)
		results = append(results, DeleteResult{Branch: name, Err: err})
		if ctx.Err() != nil {
			break
		}
	}
	return results
}
