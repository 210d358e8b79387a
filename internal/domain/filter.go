package domain

import (
	"fmt"
	"sort"
	"strings"
)

// AllCategories is the sentinel that disables category filtering
const AllCategories = "All"

// Empty-state text shown when no hook matches the current filter
const (
	EmptyStateTitle = "No hooks found"
	EmptyStateHint  = "Try adjusting your search or filter criteria"
)

// FilterState is the (category, query) pair driving the visible hook list
type FilterState struct {
	Category string
	Query    string
}

// DefaultFilterState returns the state a fresh view starts with
func DefaultFilterState() FilterState {
	return FilterState{Category: AllCategories, Query: ""}
}

// ExtractCategories returns "All" followed by the distinct categories present
// in hooks, sorted lexicographically.
func ExtractCategories(hooks []Hook) []string {
	seen := make(map[string]struct{}, len(hooks))
	unique := make([]string, 0, len(hooks))
	for _, hook := range hooks {
		name := string(hook.Category)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	sort.Strings(unique)

	return append([]string{AllCategories}, unique...)
}

// FilterHooks returns the hooks matching both the selected category and the
// query, preserving input order. The input slice is never modified.
//
// Category matching is exact and case-sensitive unless selectedCategory is
// "All". The query is trimmed; an empty query matches everything, otherwise
// it must be a case-insensitive substring of the name, description,
// repository name or repository owner.
func FilterHooks(hooks []Hook, selectedCategory, query string) []Hook {
	needle := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]Hook, 0, len(hooks))
	for _, hook := range hooks {
		if !matchesCategory(hook, selectedCategory) {
			continue
		}
		if needle != "" && !matchesQuery(hook, needle) {
			continue
		}
		filtered = append(filtered, hook)
	}
	return filtered
}

// Apply filters hooks with the state's category and query
func (s FilterState) Apply(hooks []Hook) []Hook {
	return FilterHooks(hooks, s.Category, s.Query)
}

func matchesCategory(hook Hook, selectedCategory string) bool {
	return selectedCategory == AllCategories || string(hook.Category) == selectedCategory
}

// matchesQuery expects needle to be trimmed and lower-cased already
func matchesQuery(hook Hook, needle string) bool {
	return strings.Contains(strings.ToLower(hook.Name), needle) ||
		strings.Contains(strings.ToLower(hook.Description), needle) ||
		strings.Contains(strings.ToLower(hook.RepoName), needle) ||
		strings.Contains(strings.ToLower(hook.RepoOwner), needle)
}

// ResultCountMessage returns "1 hook found" or "N hooks found"
func ResultCountMessage(n int) string {
	if n == 1 {
		return "1 hook found"
	}
	return fmt.Sprintf("%d hooks found", n)
}
