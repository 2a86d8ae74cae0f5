// Package errors provides structured error handling for the gqlweave
// code-generation pipeline. It defines error codes, categories, and
// formatting for both human-readable terminal output and machine-parseable
// JSON for tooling consumption.
package errors

import (
	"encoding/json"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// ErrorCode represents a unique error code in the gqlweave pipeline
type ErrorCode string

// ErrorCategory represents the category of pipeline error
type ErrorCategory string

const (
	// CategorySchema represents schema loading errors (SCH100-199)
	CategorySchema ErrorCategory = "schema"
	// CategoryDocument represents operation document errors (DOC200-299)
	CategoryDocument ErrorCategory = "document"
	// CategoryContext represents template-context construction errors (CTX600-699)
	CategoryContext ErrorCategory = "context"
)

// ErrorSeverity indicates the severity level of an error
type ErrorSeverity string

const (
	// SeverityError indicates an error that aborts context construction
	SeverityError ErrorSeverity = "error"
	// SeverityWarning indicates a warning that suggests potential issues
	SeverityWarning ErrorSeverity = "warning"
)

// Template-context error codes (CTX600-699)
const (
	// ErrUnclassifiableType indicates a type definition whose kind falls
	// outside the closed six-kind set
	ErrUnclassifiableType ErrorCode = "CTX601"
)

// SourceLocation is the position of a definition in its schema source
type SourceLocation struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// PipelineError represents a structured pipeline error with enough
// information for both terminal output and tooling consumption
type PipelineError struct {
	// Code is the unique error code (e.g., "CTX601")
	Code ErrorCode `json:"code"`
	// Type is a machine-readable error type identifier
	Type string `json:"type"`
	// Category is the error category
	Category ErrorCategory `json:"category"`
	// Severity is the error severity level
	Severity ErrorSeverity `json:"severity"`
	// Message is the primary error message
	Message string `json:"message"`
	// TypeName is the schema type the error refers to (optional)
	TypeName string `json:"type_name,omitempty"`
	// Location is the source location of the offending definition (optional)
	Location *SourceLocation `json:"location,omitempty"`
	// Suggestion provides a hint for fixing the error (optional)
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.TypeName, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ToJSON returns the error as a JSON string for tooling consumption
func (e *PipelineError) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WithSuggestion sets a suggestion for fixing the error
func (e *PipelineError) WithSuggestion(suggestion string) *PipelineError {
	e.Suggestion = suggestion
	return e
}

func newError(code ErrorCode, errType string, category ErrorCategory, severity ErrorSeverity, message string) *PipelineError {
	return &PipelineError{
		Code:     code,
		Type:     errType,
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

func locationOf(pos *ast.Position) *SourceLocation {
	if pos == nil {
		return nil
	}
	loc := &SourceLocation{Line: pos.Line, Column: pos.Column}
	if pos.Src != nil {
		loc.File = pos.Src.Name
	}
	return loc
}

// NewUnclassifiableType creates a CTX601 error for a type definition whose
// kind is none of Object, InputObject, Enum, Union, Interface, or Scalar.
func NewUnclassifiableType(def *ast.Definition) *PipelineError {
	err := newError(
		ErrUnclassifiableType,
		"unclassifiable_type",
		CategoryContext,
		SeverityError,
		fmt.Sprintf("unexpected type definition of kind %q", def.Kind),
	).WithSuggestion("check for duplicate or mismatched schema-library loads of the same schema")
	err.TypeName = def.Name
	err.Location = locationOf(def.Position)
	return err
}
