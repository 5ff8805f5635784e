package engine

import (
	"slices"
	"testing"
)

func mustSpec(t *testing.T, protected []string, include, exclude string) FilterSpec {
	t.Helper()
	spec, err := NewFilterSpec(protected, include, exclude)
	if err != nil {
		t.Fatalf("NewFilterSpec: %v", err)
	}
	return spec
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []string
		protected  []string
		include    string
		exclude    string
		want       []string
	}{
		{
			name:       "skip override removes exact names",
			candidates: []string{"b1", "foo", "bar", "p1"},
			protected:  []string{"foo", "bar", "p1"},
			want:       []string{"b1"},
		},
		{
			name:       "hyphenated names are exact matches too",
			candidates: []string{"b1", "foo-bar", "p1"},
			protected:  []string{"foo-bar", "p1"},
			want:       []string{"b1"},
		},
		{
			name:       "include pattern narrows the selection",
			candidates: []string{"patch-1", "patch-2", "release"},
			protected:  []string{"master", "main", "develop"},
			include:    "patch-.*",
			want:       []string{"patch-1", "patch-2"},
		},
		{
			name:       "protection removes before exclude has work to do",
			candidates: []string{"release", "release-new"},
			protected:  []string{"release"},
			exclude:    "release-old",
			want:       []string{"release-new"},
		},
		{
			name:       "exclusion drops surviving matches",
			candidates: []string{"patch-1", "patch-2", "wip-1"},
			exclude:    "wip-.*",
			want:       []string{"patch-1", "patch-2"},
		},
		{
			name:       "protection dominates inclusion",
			candidates: []string{"main", "main-backup"},
			protected:  []string{"main"},
			include:    "main.*",
			want:       []string{"main-backup"},
		},
		{
			name:       "empty candidates",
			candidates: nil,
			protected:  []string{"main"},
			want:       []string{},
		},
		{
			name:       "order preserved",
			candidates: []string{"z", "a", "m"},
			want:       []string{"z", "a", "m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := mustSpec(t, tt.protected, tt.include, tt.exclude)
			got := Filter(tt.candidates, spec)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_ExcludedIffEqualsProtectedEntry(t *testing.T) {
	t.Parallel()

	// A candidate is dropped by the protection stage iff it equals an entry,
	// never because it merely contains one.
	spec := mustSpec(t, []string{"rel"}, "", "")
	got := Filter([]string{"rel", "release", "unrel", "rel2"}, spec)
	want := []string{"release", "unrel", "rel2"}
	if !slices.Equal(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	spec := mustSpec(t, []string{"main"}, "patch-.*", "patch-9")
	candidates := []string{"main", "patch-1", "patch-9", "feature"}

	first := Filter(candidates, spec)
	second := Filter(candidates, spec)
	if !slices.Equal(first, second) {
		t.Errorf("repeated Filter calls differ: %v vs %v", first, second)
	}

	again := Filter(first, spec)
	if !slices.Equal(first, again) {
		t.Errorf("filtering a filtered result changed it: %v vs %v", first, again)
	}
}

func TestFilter_DefaultIncludeIsTotal(t *testing.T) {
	t.Parallel()

	spec := mustSpec(t, []string{"main"}, "", "")
	candidates := []string{"a", "b", "c", "main"}
	got := Filter(candidates, spec)
	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("every non-protected candidate should survive: got %v, want %v", got, want)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	spec := mustSpec(t, []string{"b"}, "", "")
	candidates := []string{"a", "b", "c"}
	Filter(candidates, spec)
	if !slices.Equal(candidates, []string{"a", "b", "c"}) {
		t.Errorf("input slice was mutated: %v", candidates)
	}
}
