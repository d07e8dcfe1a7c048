// Package diagram renders category/realization relations as Mermaid class diagrams.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/goabstract/internal/analyzer"
)

// DiagramOptions controls Mermaid diagram generation.
type DiagramOptions struct {
	MaxMethodsPerBox int  // 0 means unlimited
	IncludeInit      bool // include %%{init:}%% directive for standalone .mmd files
}

func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5}
}

const initDirective = "%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}}%%\n"

// GenerateMermaid produces a classDiagram with one block per category, one per
// realization, and a realization arrow for every relation. Output is sorted so
// the same result always renders the same text.
func GenerateMermaid(result *analyzer.Result, opts DiagramOptions) string {
	ifaces := append([]analyzer.CategoryDef(nil), result.Categories...)
	sort.Slice(ifaces, func(i, j int) bool { return ifaces[i].Key() < ifaces[j].Key() })

	typs := append([]analyzer.TypeDef(nil), result.Types...)
	sort.Slice(typs, func(i, j int) bool { return typs[i].Key() < typs[j].Key() })

	rels := append([]analyzer.Realization(nil), result.Realizations...)
	sort.Slice(rels, func(i, j int) bool {
		if a, b := rels[i].Type.Key(), rels[j].Type.Key(); a != b {
			return a < b
		}
		return rels[i].Category.Key() < rels[j].Category.Key()
	})

	var b strings.Builder
	if opts.IncludeInit {
		b.WriteString(initDirective)
	}
	b.WriteString("classDiagram")
	if len(ifaces) == 0 && len(typs) == 0 {
		return b.String()
	}
	b.WriteString("\n    direction LR")
	b.WriteString("\n    classDef categoryStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold")
	b.WriteString("\n    classDef realizationStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")

	for _, iface := range ifaces {
		b.WriteString("\n")
		writeBlock(&b, NodeID(iface.PkgName, iface.Name), "<<interface>>", iface.SourceFile, iface.Methods, opts)
	}
	for _, typ := range typs {
		b.WriteString("\n")
		writeBlock(&b, NodeID(typ.PkgName, typ.Name), "", typ.SourceFile, nil, opts)
	}

	if len(rels) > 0 {
		b.WriteString("\n")
	}
	for _, rel := range rels {
		label := ""
		if rel.ViaPointer {
			label = " : pointer"
		}
		fmt.Fprintf(&b, "\n    %s ..|> %s%s",
			NodeID(rel.Type.PkgName, rel.Type.Name),
			NodeID(rel.Category.PkgName, rel.Category.Name), label)
	}

	b.WriteString("\n")
	for _, iface := range ifaces {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" categoryStyle", NodeID(iface.PkgName, iface.Name))
	}
	for _, typ := range typs {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" realizationStyle", NodeID(typ.PkgName, typ.Name))
	}

	return b.String()
}

// NodeID builds a Mermaid-safe node ID from a package and type name.
func NodeID(pkgName, name string) string {
	return strings.NewReplacer("/", "_", ".", "_", "-", "_").Replace(pkgName + "_" + name)
}

// SanitizeSignature removes characters Mermaid treats as markup in class labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	return strings.ReplaceAll(sig, "{}", "")
}

func writeBlock(b *strings.Builder, id, annotation, file string, methods []analyzer.MethodSig, opts DiagramOptions) {
	fmt.Fprintf(b, "    class %s {\n", id)
	if annotation != "" {
		b.WriteString("        " + annotation + "\n")
	}
	if file != "" {
		b.WriteString("        %% file: " + file + "\n")
	}

	limit := len(methods)
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
	}
	for _, m := range methods[:limit] {
		b.WriteString("        +" + SanitizeSignature(m.Signature) + "\n")
	}
	if limit < len(methods) {
		b.WriteString("        ...\n")
	}
	b.WriteString("    }")
}
