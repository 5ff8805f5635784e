package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/sweep/internal/config"
	"github.com/raphi011/sweep/internal/engine"
	"github.com/raphi011/sweep/internal/git"
	"github.com/raphi011/sweep/internal/log"
	"github.com/raphi011/sweep/internal/output"
	"github.com/raphi011/sweep/internal/ui"
)

// applyDelay is the grace period before apply-mode deletions are issued.
// Ctrl-C during the delay guarantees zero deletions. Tests shorten it.
var applyDelay = 3 * time.Second

// runSweep executes one invocation: resolve configuration, list merged
// branches, filter, report, and in apply mode delete. dir is the working
// directory for git commands; "" means the process working directory.
func runSweep(ctx context.Context, opts *sweepOptions, dir string) error {
	logger := log.FromContext(ctx)
	printer := output.FromContext(ctx)

	scope, err := engine.ParseScope(opts.local, opts.remoteSet, opts.remote)
	if err != nil {
		return err
	}

	if !git.IsInsideRepo(ctx, dir) {
		return fmt.Errorf("not inside a git repository")
	}

	cfg, err := loadConfig(ctx, dir)
	if err != nil {
		return err
	}

	store := engine.ChainStores(
		git.ConfigStore{Dir: dir},
		config.NewStore(cfg),
	)

	protected := engine.ResolveProtection(ctx, store, opts.skip, opts.skipSet)
	target := engine.ResolveTarget(ctx, store, opts.into)
	logger.Debug("resolved configuration", "target", target, "protected", fmt.Sprint(protected))

	spec, err := engine.NewFilterSpec(protected, opts.match, opts.ignore)
	if err != nil {
		return err
	}

	mode := engine.DryRun
	if opts.apply {
		mode = engine.Apply
	}

	var candidates []string
	if scope.IsLocal() {
		candidates, err = git.ListMergedLocal(ctx, dir, target)
	} else {
		candidates, err = git.ListMergedRemote(ctx, dir, scope.Remote(), target)
	}
	if err != nil {
		return err
	}

	plan, err := engine.BuildPlan(candidates, spec, scope, mode)
	if err != nil {
		return err
	}

	if opts.interactive {
		plan, err = narrowPlan(plan, spec)
		if err != nil {
			return err
		}
	}

	printer.Print(ui.FormatPlan(plan))

	if plan.Mode == engine.DryRun {
		printer.Print(ui.FormatSummary(len(plan.Selected), 0, true))
		return nil
	}

	printer.Print(ui.FormatCountdown(int(applyDelay / time.Second)))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(applyDelay):
	}

	var results []git.DeleteResult
	if plan.Scope.IsLocal() {
		results = git.DeleteLocalBranches(ctx, dir, plan.Selected)
	} else {
		results = git.DeleteRemoteBranches(ctx, dir, plan.Scope.Remote(), plan.Selected)
	}

	printer.Print(ui.FormatResults(results))

	deleted, failed := 0, 0
	for _, r := range results {
		if r.Ok() {
			deleted++
		} else {
			failed++
		}
	}
	printer.Print(ui.FormatSummary(deleted, failed, false))

	if failed > 0 {
		return fmt.Errorf("%d of %d deletions failed", failed, len(results))
	}
	return nil
}

// narrowPlan lets the user pick a subset of the planned branches. The picked
// subset goes back through BuildPlan so the final plan carries the same
// protection metadata and an emptied selection still reports as no candidates.
func narrowPlan(plan *engine.Plan, spec engine.FilterSpec) (*engine.Plan, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil, fmt.Errorf("interactive selection requires a terminal")
	}

	picked, cancelled, err := ui.SelectBranches(plan.Selected)
	if err != nil {
		return nil, err
	}
	if cancelled {
		return nil, fmt.Errorf("selection cancelled")
	}
	return engine.BuildPlan(picked, spec, plan.Scope, plan.Mode)
}

// loadConfig reads the global config and overlays a per-repo .sweep.toml
// found at the repository root.
func loadConfig(ctx context.Context, dir string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	root, err := git.TopLevel(ctx, dir)
	if err != nil {
		return nil, err
	}
	local, err := config.LoadLocal(root)
	if err != nil {
		return nil, err
	}

	return config.MergeLocal(&cfg, local), nil
}
