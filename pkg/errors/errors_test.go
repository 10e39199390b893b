package errors

import "testing"

func TestHasErrorsTrueWhenAnyDiagnosticIsAnError(t *testing.T) {
	diags := []Diagnostic{
		&ImportDiagnostic{Sev: SeverityWarning, C: CodeInvalidScriptName, Msg: "warn"},
		&ImportDiagnostic{Sev: SeverityError, C: CodeConflictingNamespace, Msg: "bad"},
	}
	if !HasErrors(diags) {
		t.Fatal("expected HasErrors to be true when a diagnostic is an error")
	}
}

func TestHasErrorsFalseWhenOnlyWarnings(t *testing.T) {
	diags := []Diagnostic{
		&ImportDiagnostic{Sev: SeverityWarning, C: CodeInvalidScriptName, Msg: "warn"},
	}
	if HasErrors(diags) {
		t.Fatal("expected HasErrors to be false when every diagnostic is a warning")
	}
}

func TestHasErrorsFalseOnEmptySlice(t *testing.T) {
	if HasErrors(nil) {
		t.Fatal("expected HasErrors to be false on an empty slice")
	}
}

func TestImportDiagnosticUnwrapReturnsCause(t *testing.T) {
	cause := &InternalError{Msg: "boom"}
	d := &ImportDiagnostic{Sev: SeverityError, C: CodeSerializableViolation, Msg: "wrap", Cause: cause}
	if d.Unwrap() != cause {
		t.Fatal("Unwrap should return the wrapped cause")
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityWarning.String() != "warning" {
		t.Fatalf("got %q, want %q", SeverityWarning.String(), "warning")
	}
	if SeverityError.String() != "error" {
		t.Fatalf("got %q, want %q", SeverityError.String(), "error")
	}
}

func TestPanicRaisesInternalError(t *testing.T) {
	defer func() {
		r := recover()
		ierr, ok := r.(*InternalError)
		if !ok {
			t.Fatalf("got %#v, want a recovered *InternalError", r)
		}
		if ierr.Error() == "" {
			t.Fatal("InternalError.Error() should not be empty")
		}
	}()
	Panic("lookup failed for %s", "Widget")
}

func TestDisplayDiagnosticsSkipsPositionsWithNoSource(t *testing.T) {
	diags := []Diagnostic{
		&ImportDiagnostic{Sev: SeverityError, C: CodeAmbiguousBaseMemberName, Msg: "no source attached"},
	}
	// Exercised for its side effect only: it must not panic when a
	// diagnostic's Position carries no Source.
	DisplayDiagnostics(diags)
}
