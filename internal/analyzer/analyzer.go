// Package analyzer loads the module's packages and finds which concrete types
// realize which category interfaces.
package analyzer

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Analyze loads every package under dir and matches named types against the
// non-empty interfaces declared in the same module.
func Analyze(ctx context.Context, dir string, opts AnalyzeOptions, logger *slog.Logger) (*Result, error) {
	logger = logger.With("component", "analyzer")

	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving dir: %w", err)
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	logger.Info("packages loaded", "packages_count", len(pkgs), "dir", dir)

	// Packages with errors are logged and analyzed as far as they type-check.
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	var categories []CategoryDef
	var namedTypes []TypeDef

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || tn.IsAlias() {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}
			src := resolveSourceFile(pkg.Fset, tn.Pos(), dir)

			if iface, ok := named.Underlying().(*types.Interface); ok {
				categories = append(categories, CategoryDef{
					Name:       tn.Name(),
					PkgPath:    pkg.PkgPath,
					PkgName:    pkg.Name,
					Methods:    extractIfaceMethods(iface),
					TypeObj:    iface,
					SourceFile: src,
				})
				logger.Debug("found category", "name", tn.Name(), "package", pkg.PkgPath, "methods", iface.NumMethods())
				continue
			}

			namedTypes = append(namedTypes, TypeDef{
				Name:       tn.Name(),
				PkgPath:    pkg.PkgPath,
				PkgName:    pkg.Name,
				IsStruct:   isStruct(named),
				Methods:    extractTypeMethods(named),
				TypeObj:    named,
				SourceFile: src,
			})
			logger.Debug("found type", "name", tn.Name(), "package", pkg.PkgPath, "methods", named.NumMethods())
		}
	}

	logger.Info("types collected", "categories", len(categories), "types", len(namedTypes))

	// types.Implements compares full signatures, so a type whose methods only
	// share names with the category is not a realization.
	var realizations []Realization
	for i := range namedTypes {
		t := &namedTypes[i]
		for j := range categories {
			c := &categories[j]
			if c.TypeObj.NumMethods() == 0 {
				continue
			}

			var viaPointer bool
			switch {
			case types.Implements(t.TypeObj, c.TypeObj):
			case types.Implements(types.NewPointer(t.TypeObj), c.TypeObj):
				viaPointer = true
			default:
				continue
			}
			realizations = append(realizations, Realization{Type: t, Category: c, ViaPointer: viaPointer})
			logger.Debug("realization found", "type", t.ID(), "category", c.ID(), "via_pointer", viaPointer)
		}
	}

	logger.Info("analysis complete", "realizations", len(realizations))

	return &Result{
		Categories:   categories,
		Types:        namedTypes,
		Realizations: realizations,
	}, nil
}

func extractIfaceMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{Name: m.Name(), Signature: formatSignature(m)}
	}
	return methods
}

// extractTypeMethods lists methods declared directly on named, not promoted ones.
func extractTypeMethods(named *types.Named) []MethodSig {
	var methods []MethodSig
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods = append(methods, MethodSig{Name: m.Name(), Signature: formatSignature(m)})
	}
	return methods
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")

	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		b.WriteString(" " + shortType(results.At(0).Type()))
	default:
		parts := make([]string, results.Len())
		for i := range parts {
			parts[i] = shortType(results.At(i).Type())
		}
		b.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

// resolveSourceFile resolves a token position to a file path relative to moduleRoot.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, moduleRoot string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(moduleRoot, position.Filename)
	if err != nil {
		return position.Filename
	}
	return filepath.ToSlash(rel)
}
