package engine

import (
	"errors"
	"slices"
	"testing"
)

func TestBuildPlan(t *testing.T) {
	t.Parallel()

	spec := mustSpec(t, []string{"master", "main", "develop"}, "", "")
	plan, err := BuildPlan([]string{"feature-1", "main", "feature-2"}, spec, LocalScope(), DryRun)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(plan.Selected, []string{"feature-1", "feature-2"}) {
		t.Errorf("Selected = %v, want [feature-1 feature-2]", plan.Selected)
	}
	if !slices.Equal(plan.Skipped, []string{"master", "main", "develop"}) {
		t.Errorf("Skipped = %v, want the protection set", plan.Skipped)
	}
	if !plan.Scope.IsLocal() {
		t.Error("Scope should be local")
	}
	if plan.Mode != DryRun {
		t.Errorf("Mode = %v, want DryRun", plan.Mode)
	}
}

func TestBuildPlan_EmptySelection(t *testing.T) {
	t.Parallel()

	spec := mustSpec(t, nil, "", "")

	// No candidates after narrowing: the Plan is never built.
	plan, err := BuildPlan(nil, spec, RemoteScope("origin"), Apply)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("error = %v, want ErrNoCandidates", err)
	}
	if plan != nil {
		t.Errorf("plan = %v, want nil", plan)
	}

	// Same when the filter removes everything.
	spec = mustSpec(t, []string{"main"}, "", "")
	if _, err := BuildPlan([]string{"main"}, spec, LocalScope(), DryRun); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("error = %v, want ErrNoCandidates", err)
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	if got := DryRun.String(); got != "dry-run" {
		t.Errorf("DryRun.String() = %q", got)
	}
	if got := Apply.String(); got != "apply" {
		t.Errorf("Apply.String() = %q", got)
	}
}
