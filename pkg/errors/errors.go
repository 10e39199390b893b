package errors

import (
	"fmt"
	"os"
	"strings"
)

// Severity classifies a Diagnostic: warnings never abort a phase, errors
// accumulate within a phase but the driver checks the error flag after
// each major phase and aborts before writing output when it is set.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Code enumerates the numbered diagnostics the Metadata Importer (and, to a
// lesser extent, the other two subsystems) can report. Codes are stable and
// referenced by tests; new ones are appended, never renumbered.
type Code int

const (
	_ Code = iota
	CodeInvalidScriptName
	CodeConflictingNamespace
	CodeIllegalAttributeOnNonStaticType
	CodeAmbiguousBaseMemberName
	CodeSerializableViolation
	CodeUnsupportedAttributeOnInterface
	CodeUnsupportedAttributeOnOverride
	CodeInvalidInlineCodeTemplate
	CodeGenericArgumentsUnspecified
	CodeConstructorParameterMismatch
	CodeIllegalIntrinsicOperator
	CodeCharacterUpcast
)

// Diagnostic is the interface implemented by every error the core reports:
// an embedded error, a position, a kind tag distinguishing which subsystem
// raised it, and Unwrap support.
type Diagnostic interface {
	error
	Pos() Position
	Kind() string // "Import", "Emit", "Rewrite", "Internal"
	Code() Code
	Severity() Severity
	Message() string
	Unwrap() error
}

// ImportDiagnostic is raised by the Metadata Importer while deciding a
// type's or member's semantic record.
type ImportDiagnostic struct {
	Position
	Sev   Severity
	C     Code
	Msg   string
	Cause error
}

func (e *ImportDiagnostic) Error() string {
	return fmt.Sprintf("Import %s [%d] at %d:%d: %s", e.Sev, e.C, e.Line, e.Column, e.Msg)
}
func (e *ImportDiagnostic) Pos() Position      { return e.Position }
func (e *ImportDiagnostic) Kind() string       { return "Import" }
func (e *ImportDiagnostic) Code() Code         { return e.C }
func (e *ImportDiagnostic) Severity() Severity { return e.Sev }
func (e *ImportDiagnostic) Message() string    { return e.Msg }
func (e *ImportDiagnostic) Unwrap() error      { return e.Cause }

// EmitDiagnostic is raised by the Runtime-Call Emitter. In practice the
// emitter raises exactly one (character upcast) but the type exists so the
// emitter never needs to smuggle an error through the importer's channel.
type EmitDiagnostic struct {
	Position
	Sev Severity
	C   Code
	Msg string
}

func (e *EmitDiagnostic) Error() string {
	return fmt.Sprintf("Emit %s [%d] at %d:%d: %s", e.Sev, e.C, e.Line, e.Column, e.Msg)
}
func (e *EmitDiagnostic) Pos() Position      { return e.Position }
func (e *EmitDiagnostic) Kind() string       { return "Emit" }
func (e *EmitDiagnostic) Code() Code         { return e.C }
func (e *EmitDiagnostic) Severity() Severity { return e.Sev }
func (e *EmitDiagnostic) Message() string    { return e.Msg }
func (e *EmitDiagnostic) Unwrap() error      { return nil }

// InternalError represents a bug in the driver or in an external
// collaborator, never a user-facing rule violation: a lookup against a
// symbol the Importer never prepared, or a rewrite asked to jump to an
// undefined label. The core panics with this type; the driver recovers it
// at the top level and reports it distinctly from ordinary diagnostics.
type InternalError struct {
	Msg   string
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Msg)
}
func (e *InternalError) Unwrap() error { return e.Cause }

// Panic raises an InternalError. The core never returns an InternalError as
// a value; it always panics — the core's behavior is total on well-formed
// input, and malformed input is an internal error, not a user-facing one.
func Panic(format string, args ...interface{}) {
	panic(&InternalError{Msg: fmt.Sprintf(format, args...)})
}

// DisplayDiagnostics prints diagnostics to stderr with the offending source
// line and a `^` marker underneath the reported column.
func DisplayDiagnostics(diags []Diagnostic) {
	for _, d := range diags {
		pos := d.Pos()
		fmt.Fprintf(os.Stderr, "%s %s [%d] at %d:%d: %s\n", d.Kind(), d.Severity(), d.Code(), pos.Line, pos.Column, d.Message())

		if pos.Source == nil {
			continue
		}
		lines := pos.Source.Lines()
		lineIdx := pos.Line - 1
		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}
		sourceLine := strings.TrimRight(lines[lineIdx], "\r\n\t ")
		fmt.Fprintf(os.Stderr, "  %s\n", sourceLine)
		pad := pos.Column - 1 // Column is 1-based
		if pad < 0 {
			pad = 0
		}
		marker := strings.Repeat(" ", pad) + "^"
		fmt.Fprintf(os.Stderr, "  %s\n", marker)
		fmt.Fprintln(os.Stderr)
	}
}

// HasErrors reports whether any diagnostic in the slice is an error, as
// opposed to a mere warning — the driver checks this after each phase.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity() == SeverityError {
			return true
		}
	}
	return false
}
