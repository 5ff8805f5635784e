package engine

import (
	"regexp"
	"slices"
	"strings"
)

// Predicate reports whether a branch name matches a compiled pattern.
type Predicate func(name string) bool

// matchNothing never matches. Used for empty protection sets and the unset
// exclude pattern so that neither ever drops a legitimate candidate.
func matchNothing(string) bool { return false }

// matchEverything always matches. Used for the unset include pattern.
func matchEverything(string) bool { return true }

// CompileProtection builds the anchored exact-match predicate for a
// protection set. Each name is escaped before anchoring, so a protected name
// containing regexp metacharacters still matches only itself: "foo" matches
// the branch foo but never foomore nor barfoo.
func CompileProtection(names []string) Predicate {
	if len(names) == 0 {
		return matchNothing
	}
	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = regexp.QuoteMeta(name)
	}
	re := regexp.MustCompile("^(?:" + strings.Join(escaped, "|") + ")$")
	return re.MatchString
}

// CompileInclude compiles the inclusion pattern. Unset means every candidate
// is included. An invalid pattern is a fatal ConfigError.
func CompileInclude(pattern string) (Predicate, error) {
	if pattern == "" {
		return matchEverything, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, configError("invalid --match pattern", err)
	}
	return re.MatchString, nil
}

// CompileExclude compiles the exclusion pattern. Unset means no candidate is
// excluded. An invalid pattern is a fatal ConfigError.
func CompileExclude(pattern string) (Predicate, error) {
	if pattern == "" {
		return matchNothing, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, configError("invalid --ignore pattern", err)
	}
	return re.MatchString, nil
}

// FilterSpec holds the compiled predicates and the protection set they were
// built from. Construct via NewFilterSpec; a FilterSpec is read-only after
// construction.
type FilterSpec struct {
	protectedNames []string
	protected      Predicate
	include        Predicate
	exclude        Predicate
}

// NewFilterSpec compiles the protection set and the optional include/ignore
// patterns into a FilterSpec. Pattern compilation failures are ConfigErrors
// and abort the run before any candidate enumeration.
func NewFilterSpec(protected []string, include, exclude string) (FilterSpec, error) {
	inc, err := CompileInclude(include)
	if err != nil {
		return FilterSpec{}, err
	}
	exc, err := CompileExclude(exclude)
	if err != nil {
		return FilterSpec{}, err
	}
	return FilterSpec{
		protectedNames: slices.Clone(protected),
		protected:      CompileProtection(protected),
		include:        inc,
		exclude:        exc,
	}, nil
}

// ProtectedNames returns a copy of the protection set the spec was built from.
func (s FilterSpec) ProtectedNames() []string {
	return slices.Clone(s.protectedNames)
}
