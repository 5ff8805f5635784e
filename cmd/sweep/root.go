package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/sweep/internal/engine"
	"github.com/raphi011/sweep/internal/git"
	"github.com/raphi011/sweep/internal/log"
	"github.com/raphi011/sweep/internal/output"
)

// sweepOptions holds the parsed flag values for a run.
type sweepOptions struct {
	verbose bool
	quiet   bool

	local       bool
	remote      string
	skip        string
	match       string
	ignore      string
	into        string
	apply       bool
	interactive bool

	// Changed-flag state, captured at RunE time. An explicitly empty --skip
	// is meaningful (it clears the protection set), so presence matters.
	skipSet   bool
	remoteSet bool
}

func newRootCmd() *cobra.Command {
	var opts sweepOptions

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete branches already merged into a target branch",
		Long: `sweep deletes branches that are already merged into a target branch,
either locally or on a named remote.

By default nothing is deleted: sweep prints the plan and exits. Pass --apply
to actually delete; a short cancellable delay runs before anything happens.

The protection set (never deleted, default master/main/develop) and the merge
target (default origin/master) can be persisted via git config (sweep.protect,
sweep.into), ~/.config/sweep/config.toml, or a per-repo .sweep.toml.

Examples:
  sweep -l                        # Preview local branches merged into origin/master
  sweep -l --apply                # Delete them
  sweep -r origin                 # Preview merged branches on origin
  sweep -l --into origin/main     # Compare against origin/main instead
  sweep -l --skip main,release    # Replace the protection set for this run
  sweep -l --match 'feature/.*'   # Only consider matching branches
  sweep -l --ignore 'keep-.*'     # Drop matching branches from the plan
  sweep -l -i --apply             # Pick branches interactively, then delete`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			if err := git.CheckGit(); err != nil {
				return err
			}

			// Attach logger (stderr) and printer (stdout) to the context.
			logger := log.New(os.Stderr, opts.verbose, opts.quiet)
			ctx := log.WithLogger(cmd.Context(), logger)
			ctx = output.WithPrinter(ctx, os.Stdout)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.skipSet = cmd.Flags().Changed("skip")
			opts.remoteSet = cmd.Flags().Changed("remote")
			return runSweep(cmd.Context(), &opts, "")
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show git commands being executed")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress diagnostic output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Flags().BoolVarP(&opts.local, "local", "l", false, "Operate on local branches")
	cmd.Flags().StringVarP(&opts.remote, "remote", "r", "", "Operate on branches of the named remote")
	cmd.Flags().StringVar(&opts.skip, "skip", "", "Comma-separated branches to protect (replaces the persisted set)")
	cmd.Flags().StringVarP(&opts.match, "match", "m", "", "Only consider branches matching this pattern")
	cmd.Flags().StringVar(&opts.ignore, "ignore", "", "Drop branches matching this pattern")
	cmd.Flags().StringVar(&opts.into, "into", "", "Merge target to compare against (default origin/master)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Delete the selected branches (default is a dry run)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Select branches interactively before deleting")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.RegisterFlagCompletionFunc("remote", completeRemotes)
	cmd.RegisterFlagCompletionFunc("into", completeBranches)
	cmd.RegisterFlagCompletionFunc("skip", completeBranches)

	return cmd
}

// Execute runs the root command and maps the error taxonomy onto exit codes:
// 0 success, 2 nothing to delete, 1 anything fatal.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, engine.ErrNoCandidates) {
			os.Exit(2)
		}
		if engine.IsConfigError(err) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Run 'sweep -h' for help")
		}
		os.Exit(1)
	}
}
