package scanner

import "fmt"

// Diagnostic is one recoverable lexical error. Where is empty for scanner
// diagnostics; it exists so later stages can point at a token (" at 'x'").
type Diagnostic struct {
	Line    int    `json:"line" yaml:"line"`
	Where   string `json:"where,omitempty" yaml:"where,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}
