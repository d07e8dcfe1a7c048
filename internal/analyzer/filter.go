package analyzer

import (
	"strings"
	"unicode"
)

// Filter keeps the realizations of the categories selected by opts and prunes
// categories and types left without one. A category named in opts.Categories is
// kept even when nothing realizes it, together with its expected realization
// type, so Verify can explain the gap instead of reporting the category as
// missing.
func Filter(result *Result, opts AnalyzeOptions) *Result {
	filtered := &Result{}

	wanted := make(map[string]bool, len(opts.Categories))
	expectedTypes := make(map[string]bool, len(opts.Categories))
	for _, exp := range opts.Categories {
		wanted[exp.Category] = true
		expectedTypes[exp.Realization] = true
	}
	selected := func(c *CategoryDef) bool {
		if len(wanted) > 0 && !wanted[c.Key()] {
			return false
		}
		return opts.PkgPrefix == "" || strings.HasPrefix(c.PkgPath, opts.PkgPrefix)
	}

	categoryIDs := make(map[string]bool)
	typeIDs := make(map[string]bool)

	for _, r := range result.Realizations {
		if !selected(r.Category) {
			continue
		}
		if !opts.IncludeUnexported && (isUnexported(r.Category.Name) || isUnexported(r.Type.Name)) {
			continue
		}
		filtered.Realizations = append(filtered.Realizations, r)
		categoryIDs[r.Category.ID()] = true
		typeIDs[r.Type.ID()] = true
	}

	categoryPkgs := make(map[string]bool)
	for i := range result.Categories {
		c := &result.Categories[i]
		if categoryIDs[c.ID()] || (len(wanted) > 0 && selected(c)) {
			filtered.Categories = append(filtered.Categories, *c)
			categoryPkgs[c.PkgPath] = true
		}
	}
	for i := range result.Types {
		t := &result.Types[i]
		if typeIDs[t.ID()] || (expectedTypes[t.Key()] && categoryPkgs[t.PkgPath]) {
			filtered.Types = append(filtered.Types, *t)
		}
	}

	return filtered
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	return unicode.IsLower([]rune(name)[0])
}
