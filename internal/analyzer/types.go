package analyzer

import "go/types"

// CategoryDef is an interface found in the module, treated as a category contract.
type CategoryDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	TypeObj    *types.Interface
	SourceFile string
}

// TypeDef is a named non-interface type that may realize a category.
type TypeDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	Methods    []MethodSig
	TypeObj    *types.Named
	SourceFile string
}

type MethodSig struct {
	Name      string
	Signature string
}

// Realization records that Type satisfies every method of Category with
// identical signatures.
type Realization struct {
	Type       *TypeDef
	Category   *CategoryDef
	ViaPointer bool // only *T satisfies the category
}

// Result holds the categories, candidate types and realizations of one module.
type Result struct {
	Categories   []CategoryDef
	Types        []TypeDef
	Realizations []Realization
}

// AnalyzeOptions controls which realizations Filter keeps.
type AnalyzeOptions struct {
	// Categories limits the result to the named categories. Empty keeps all.
	Categories        []Expectation
	PkgPrefix         string
	IncludeUnexported bool
}

// ID identifies the category by package path and is unique within a load.
func (d CategoryDef) ID() string { return d.PkgPath + "." + d.Name }

// Key is the short "pkg.Name" form used in expectations and reports.
// Two packages with the same name share a Key but not an ID.
func (d CategoryDef) Key() string { return d.PkgName + "." + d.Name }

func (d TypeDef) ID() string  { return d.PkgPath + "." + d.Name }
func (d TypeDef) Key() string { return d.PkgName + "." + d.Name }
