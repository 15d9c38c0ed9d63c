// Package astgen generates the syntax-tree node declarations consumed by
// the (future) parser: one struct per variant, a Visitor interface with
// one dispatch method per variant, and an Accept method on each variant.
// It runs at build time via cmd/genast; nothing imports its output at
// scan time.
package astgen

import (
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
)

const tokenImportPath = "github.com/karupanerura/golox/internal/token"

// FieldDef is one typed field of a node variant.
type FieldDef struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

// NodeDef describes one variant: its name and typed field list, in
// declaration order.
type NodeDef struct {
	Name   string     `mapstructure:"name"`
	Fields []FieldDef `mapstructure:"fields"`
}

// DefaultExprNodes is the built-in expression node set.
func DefaultExprNodes() []NodeDef {
	return []NodeDef{
		{Name: "Binary", Fields: []FieldDef{
			{Name: "Left", Type: "Expr"},
			{Name: "Operator", Type: "token.Token"},
			{Name: "Right", Type: "Expr"},
		}},
		{Name: "Grouping", Fields: []FieldDef{
			{Name: "Expression", Type: "Expr"},
		}},
		{Name: "Literal", Fields: []FieldDef{
			{Name: "Value", Type: "any"},
		}},
		{Name: "Unary", Fields: []FieldDef{
			{Name: "Operator", Type: "token.Token"},
			{Name: "Right", Type: "Expr"},
		}},
	}
}

// LoadSpec reads node definitions from a YAML document of the form:
//
//	nodes:
//	  - name: Binary
//	    fields:
//	      - {name: Left, type: Expr}
func LoadSpec(r io.Reader) ([]NodeDef, error) {
	yamlBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	var raw struct {
		Nodes []any `yaml:"nodes"`
	}
	if err := yaml.Unmarshal(yamlBytes, &raw); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	if len(raw.Nodes) == 0 {
		return nil, fmt.Errorf("nodes: required")
	}

	nodes := make([]NodeDef, len(raw.Nodes))
	for i, v := range raw.Nodes {
		if err := mapstructure.Decode(v, &nodes[i]); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
		if nodes[i].Name == "" {
			return nil, fmt.Errorf("nodes[%d]: name: required", i)
		}
		for j, field := range nodes[i].Fields {
			if field.Name == "" || field.Type == "" {
				return nil, fmt.Errorf("nodes[%d].fields[%d]: name and type: required", i, j)
			}
		}
	}
	return nodes, nil
}

// Generate writes the declarations for base and its variants to w. Each
// variant becomes a struct named <Name><Base> with an Accept method that
// double-dispatches into Visitor.
func Generate(w io.Writer, pkg, base string, nodes []NodeDef) error {
	recv := strings.ToLower(base[:1])
	param := strings.ToLower(base)

	var b strings.Builder
	fmt.Fprintln(&b, "// Code generated by genast. DO NOT EDIT.")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	if needsTokenImport(nodes) {
		fmt.Fprintf(&b, "import %q\n\n", tokenImportPath)
	}

	fmt.Fprintf(&b, "// %s is one node of the syntax tree. Concrete variants are dispatched\n", base)
	fmt.Fprintln(&b, "// through Visitor via Accept.")
	fmt.Fprintf(&b, "type %s interface {\n", base)
	fmt.Fprintln(&b, "\tAccept(v Visitor) any")
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "type Visitor interface {")
	for _, node := range nodes {
		fmt.Fprintf(&b, "\tVisit%s%s(%s *%s%s) any\n", node.Name, base, param, node.Name, base)
	}
	fmt.Fprintln(&b, "}")

	for _, node := range nodes {
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "type %s%s struct {\n", node.Name, base)
		for _, field := range node.Fields {
			fmt.Fprintf(&b, "\t%s %s\n", field.Name, field.Type)
		}
		fmt.Fprintln(&b, "}")
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "func (%s *%s%s) Accept(v Visitor) any {\n", recv, node.Name, base)
		fmt.Fprintf(&b, "\treturn v.Visit%s%s(%s)\n", node.Name, base, recv)
		fmt.Fprintln(&b, "}")
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return fmt.Errorf("format.Source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	return nil
}

func needsTokenImport(nodes []NodeDef) bool {
	for _, node := range nodes {
		for _, field := range node.Fields {
			if strings.HasPrefix(field.Type, "token.") {
				return true
			}
		}
	}
	return false
}
