package git

import (
	"context"
	"strings"
)

// branchFormat yields one short ref name per line.
const branchFormat = "%(refname:short)"

// CurrentBranch returns the checked-out branch name, or "" on detached HEAD.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// UpstreamBranch returns the tracked upstream of the current branch, e.g.
// "origin/feature". Returns "" when no upstream is configured.
func UpstreamBranch(ctx context.Context, dir string) string {
	out, err := outputGit(ctx, dir, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// ListMergedLocal returns local branches fully merged into target, in git's
// reporting order, minus the currently checked-out branch.
func ListMergedLocal(ctx context.Context, dir, target string) ([]string, error) {
	out, err := outputGit(ctx, dir, "branch", "--format", branchFormat, "--merged", target)
	if err != nil {
		return nil, err
	}

	current, err := CurrentBranch(ctx, dir)
	if err != nil {
		return nil, err
	}

	var branches []string
	for line := range strings.Lines(string(out)) {
		name := strings.TrimSpace(line)
		if name == "" || name == current {
			continue
		}
		// Detached HEAD renders as a parenthesized description.
		if strings.HasPrefix(name, "(") {
			continue
		}
		branches = append(branches, name)
	}
	return branches, nil
}

// ListMergedRemote returns branches on the named remote fully merged into
// target, with the "<remote>/" prefix stripped. The remote HEAD alias, the
// target itself, and the current branch's tracked upstream are removed.
func ListMergedRemote(ctx context.Context, dir, remote, target string) ([]string, error) {
	out, err := outputGit(ctx, dir, "branch", "-r", "--format", branchFormat, "--merged", target)
	if err != nil {
		return nil, err
	}

	upstream := UpstreamBranch(ctx, dir)
	prefix := remote + "/"

	var branches []string
	for line := range strings.Lines(string(out)) {
		ref := strings.TrimSpace(line)
		// The HEAD symref shortens to the bare remote name; other remotes'
		// branches lack our prefix. Both fall out here.
		if !strings.HasPrefix(ref, prefix) {
			continue
		}
		if ref == prefix+"HEAD" || ref == upstream {
			continue
		}
		if ref == target || ref == prefix+target {
			continue
		}
		branches = append(branches, strings.TrimPrefix(ref, prefix))
	}
	return branches, nil
}

// ListLocalBranches returns all local branch names. Used for completion.
func ListLocalBranches(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "branch", "--format", branchFormat)
	if err != nil {
		return nil, err
	}
	var branches []string
	for line := range strings.Lines(string(out)) {
		if name := strings.TrimSpace(line); name != "" {
			branches = append(branches, name)
		}
	}
	return branches, nil
}

// ListRemotes returns the configured remote names. Used for completion.
func ListRemotes(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "remote")
	if err != nil {
		return nil, err
	}
	var remotes []string
	for line := range strings.Lines(string(out)) {
		if name := strings.TrimSpace(line); name != "" {
			remotes = append(remotes, name)
		}
	}
	return remotes, nil
}
