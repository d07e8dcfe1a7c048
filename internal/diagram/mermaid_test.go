package diagram

import (
	"strings"
	"testing"

	"github.com/olehluchkiv/goabstract/internal/analyzer"
	"github.com/stretchr/testify/assert"
)

func categoriesResult() *analyzer.Result {
	ifaces := []analyzer.CategoryDef{
		{Name: "Vehicle", PkgName: "vehicle", PkgPath: "m/internal/vehicle", SourceFile: "internal/vehicle/vehicle.go",
			Methods: []analyzer.MethodSig{
				{Name: "Model", Signature: "Model() string"},
				{Name: "StartEngine", Signature: "StartEngine() string"},
				{Name: "StopEngine", Signature: "StopEngine() string"},
				{Name: "Year", Signature: "Year() int"},
			}},
		{Name: "Animal", PkgName: "animal", PkgPath: "m/internal/animal",
			Methods: []analyzer.MethodSig{{Name: "Eat", Signature: "Eat(string) string"}}},
	}
	typs := []analyzer.TypeDef{
		{Name: "Dog", PkgName: "animal", PkgPath: "m/internal/animal"},
		{Name: "Car", PkgName: "vehicle", PkgPath: "m/internal/vehicle", SourceFile: "internal/vehicle/car.go"},
	}
	return &analyzer.Result{
		Categories: ifaces,
		Types:      typs,
		Realizations: []analyzer.Realization{
			{Type: &typs[1], Category: &ifaces[0]},
			{Type: &typs[0], Category: &ifaces[1], ViaPointer: true},
		},
	}
}

func TestGenerateMermaid_Categories(t *testing.T) {
	got := GenerateMermaid(categoriesResult(), DiagramOptions{})

	assert.True(t, strings.HasPrefix(got, "classDiagram\n"))
	assert.Contains(t, got, "class vehicle_Vehicle {\n        <<interface>>\n        %% file: internal/vehicle/vehicle.go\n")
	assert.Contains(t, got, "+StartEngine() string")
	assert.Contains(t, got, "+Eat(string) string")
	assert.Contains(t, got, "class vehicle_Car {\n        %% file: internal/vehicle/car.go\n    }")
	assert.Contains(t, got, "vehicle_Car ..|> vehicle_Vehicle\n")
	assert.Contains(t, got, "animal_Dog ..|> animal_Animal : pointer")
	assert.Contains(t, got, `cssClass "vehicle_Vehicle" categoryStyle`)
	assert.Contains(t, got, `cssClass "animal_Dog" realizationStyle`)
	assert.NotContains(t, got, "%%{init:")
}

func TestGenerateMermaid_Deterministic(t *testing.T) {
	r := categoriesResult()
	first := GenerateMermaid(r, DefaultDiagramOptions())

	// Realizations point into Categories and Types, so only their own order is shuffled.
	r.Realizations[0], r.Realizations[1] = r.Realizations[1], r.Realizations[0]
	assert.Equal(t, first, GenerateMermaid(r, DefaultDiagramOptions()))

	// animal sorts before vehicle.
	assert.Less(t, strings.Index(first, "class animal_Animal"), strings.Index(first, "class vehicle_Vehicle"))
}

func TestGenerateMermaid_TruncatesMethods(t *testing.T) {
	got := GenerateMermaid(categoriesResult(), DiagramOptions{MaxMethodsPerBox: 2})

	assert.Contains(t, got, "+Model() string")
	assert.Contains(t, got, "+StartEngine() string")
	assert.NotContains(t, got, "+StopEngine() string")
	assert.Contains(t, got, "        ...\n")
}

func TestGenerateMermaid_Empty(t *testing.T) {
	assert.Equal(t, "classDiagram", GenerateMermaid(&analyzer.Result{}, DiagramOptions{}))

	withInit := GenerateMermaid(&analyzer.Result{}, DiagramOptions{IncludeInit: true})
	assert.True(t, strings.HasPrefix(withInit, "%%{init:"))
	assert.True(t, strings.HasSuffix(withInit, "classDiagram"))
}

func TestSanitizeSignature(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Eat(string) string", "Eat(string) string"},
		{"Watch() <-chan struct{}", "Watch() chan struct"},
		{"Any(interface{}) error", "Any(any) error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeSignature(tt.in))
	}
}

func TestNodeID(t *testing.T) {
	assert.Equal(t, "vehicle_Car", NodeID("vehicle", "Car"))
	assert.Equal(t, "my_pkg_v2_Phone", NodeID("my-pkg.v2", "Phone"))
}
