package astgen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/golox/internal/astgen"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := astgen.Generate(&buf, "ast", "Expr", astgen.DefaultExprNodes()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"// Code generated by genast. DO NOT EDIT.",
		"package ast",
		`import "github.com/karupanerura/golox/internal/token"`,
		"type Expr interface {",
		"Accept(v Visitor) any",
		"VisitBinaryExpr(expr *BinaryExpr) any",
		"VisitGroupingExpr(expr *GroupingExpr) any",
		"VisitLiteralExpr(expr *LiteralExpr) any",
		"VisitUnaryExpr(expr *UnaryExpr) any",
		"Operator token.Token",
		"func (e *BinaryExpr) Accept(v Visitor) any {",
		"return v.VisitBinaryExpr(e)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestGenerateWithoutTokenFields(t *testing.T) {
	t.Parallel()

	nodes := []astgen.NodeDef{
		{Name: "Block", Fields: []astgen.FieldDef{{Name: "Statements", Type: "[]Stmt"}}},
	}

	var buf bytes.Buffer
	if err := astgen.Generate(&buf, "ast", "Stmt", nodes); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "import") {
		t.Errorf("output should not import anything:\n%s", out)
	}
	if !strings.Contains(out, "func (s *BlockStmt) Accept(v Visitor) any {") {
		t.Errorf("unexpected Accept declaration:\n%s", out)
	}
}

func TestLoadSpec(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name            string
		source          string
		expected        []astgen.NodeDef
		expectToBeError bool
	}{
		{
			name: "two nodes",
			source: `
nodes:
  - name: Literal
    fields:
      - name: Value
        type: any
  - name: Unary
    fields:
      - {name: Operator, type: token.Token}
      - {name: Right, type: Expr}
`,
			expected: []astgen.NodeDef{
				{Name: "Literal", Fields: []astgen.FieldDef{
					{Name: "Value", Type: "any"},
				}},
				{Name: "Unary", Fields: []astgen.FieldDef{
					{Name: "Operator", Type: "token.Token"},
					{Name: "Right", Type: "Expr"},
				}},
			},
		},
		{
			name:            "empty document",
			source:          "nodes: []",
			expectToBeError: true,
		},
		{
			name: "missing name",
			source: `
nodes:
  - fields:
      - {name: Value, type: any}
`,
			expectToBeError: true,
		},
		{
			name: "missing field type",
			source: `
nodes:
  - name: Literal
    fields:
      - {name: Value}
`,
			expectToBeError: true,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nodes, err := astgen.LoadSpec(strings.NewReader(tt.source))
			if tt.expectToBeError {
				if err == nil {
					t.Fatalf("expected error, got %+v", nodes)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadSpec: %v", err)
			}
			if diff := cmp.Diff(tt.expected, nodes); diff != "" {
				t.Errorf("nodes mismatch (-expected, +got):\n%s", diff)
			}
		})
	}
}
