package analyzer

import (
	"fmt"
	"go/types"
	"sort"
	"strings"
)

// Expectation names a category interface and the single type expected to
// realize it, both in "pkg.Name" form. The realization must live in the
// category's own package.
type Expectation struct {
	Category    string
	Realization string
}

// DefaultExpectations lists the categories shipped in this module.
func DefaultExpectations() []Expectation {
	return []Expectation{
		{Category: "vehicle.Vehicle", Realization: "vehicle.Car"},
		{Category: "animal.Animal", Realization: "animal.Dog"},
		{Category: "device.ElectronicDevice", Realization: "device.Phone"},
	}
}

// ViolationKind classifies a failed expectation.
type ViolationKind string

const (
	MissingCategory    ViolationKind = "missing_category"
	MissingRealization ViolationKind = "missing_realization"
	ExtraRealization   ViolationKind = "extra_realization"
	PointerOnly        ViolationKind = "pointer_only"
)

// Violation describes one broken expectation. PkgPath is empty for
// MissingCategory.
type Violation struct {
	Category string
	PkgPath  string
	Kind     ViolationKind
	Detail   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Category, v.Kind, v.Detail)
}

// Verify checks that every expected category exists, is realized by the expected
// type through value receivers, and has no other realization in the result.
// Categories that share a short name but live in different packages are checked
// separately.
func Verify(result *Result, expected []Expectation) []Violation {
	byID := make(map[string][]Realization)
	for _, r := range result.Realizations {
		byID[r.Category.ID()] = append(byID[r.Category.ID()], r)
	}

	var out []Violation
	for _, exp := range expected {
		var matched []*CategoryDef
		for i := range result.Categories {
			if result.Categories[i].Key() == exp.Category {
				matched = append(matched, &result.Categories[i])
			}
		}
		if len(matched) == 0 {
			out = append(out, Violation{
				Category: exp.Category,
				Kind:     MissingCategory,
				Detail:   "interface not found",
			})
			continue
		}
		for _, c := range matched {
			out = append(out, verifyCategory(result, c, exp, byID[c.ID()])...)
		}
	}
	return out
}

func verifyCategory(result *Result, c *CategoryDef, exp Expectation, realizations []Realization) []Violation {
	violation := func(kind ViolationKind, detail string) Violation {
		return Violation{Category: exp.Category, PkgPath: c.PkgPath, Kind: kind, Detail: detail}
	}

	var found *Realization
	var others []string
	for i, r := range realizations {
		if r.Type.PkgPath == c.PkgPath && r.Type.Key() == exp.Realization {
			found = &realizations[i]
			continue
		}
		name := r.Type.Key()
		if r.Type.PkgPath != c.PkgPath {
			name = r.Type.ID()
		}
		others = append(others, name)
	}

	var out []Violation
	switch {
	case found == nil:
		out = append(out, violation(MissingRealization, missingDetail(result, c, exp.Realization)))
	case found.ViaPointer:
		out = append(out, violation(PointerOnly,
			exp.Realization+" implements it only through *"+found.Type.Name))
	}
	if len(others) > 0 {
		sort.Strings(others)
		out = append(out, violation(ExtraRealization, "also realized by "+strings.Join(others, ", ")))
	}
	return out
}

// missingDetail explains why the expected type does not realize c.
func missingDetail(result *Result, c *CategoryDef, realization string) string {
	for _, t := range result.Types {
		if t.PkgPath != c.PkgPath || t.Key() != realization {
			continue
		}
		if t.TypeObj == nil || c.TypeObj == nil {
			break
		}
		m, wrongType := types.MissingMethod(types.NewPointer(t.TypeObj), c.TypeObj, true)
		switch {
		case m == nil:
		case wrongType:
			return fmt.Sprintf("%s.%s has the wrong signature, want %s", realization, m.Name(), formatSignature(m))
		default:
			return fmt.Sprintf("%s lacks %s", realization, formatSignature(m))
		}
	}
	return realization + " does not implement it"
}
