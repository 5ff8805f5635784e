package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/sweep/internal/git"
)

// completeRemotes completes --remote with the repository's configured remotes.
func completeRemotes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	remotes, err := git.ListRemotes(cmd.Context(), "")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return filterPrefix(remotes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeBranches completes branch-valued flags with local branch names.
func completeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	branches, err := git.ListLocalBranches(cmd.Context(), "")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return filterPrefix(branches, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(names []string, prefix string) []string {
	if prefix == "" {
		return names
	}
	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}
