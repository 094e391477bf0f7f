package searchvalidator

import (
	"testing"

	"github.com/searchql/validator/ast"
)

func TestResult_AddTracksValidity(t *testing.T) {
	r := NewResult()
	if !r.Valid {
		t.Error("new result should be valid")
	}

	r.Add(Diagnostic{Severity: SeverityWarning, Message: "w"})
	if !r.Valid {
		t.Error("warnings should not invalidate the result")
	}

	r.Add(Diagnostic{Severity: SeverityError, Message: "e"})
	if r.Valid {
		t.Error("errors should invalidate the result")
	}
}

func TestResult_Errors(t *testing.T) {
	r := NewResult()
	r.AddAll([]Diagnostic{
		{Severity: SeverityError, Message: "a"},
		{Severity: SeverityWarning, Message: "b"},
		{Severity: SeverityError, Message: "c"},
	})
	errs := r.Errors()
	if len(errs) != 2 {
		t.Fatalf("Errors() = %d; want 2", len(errs))
	}
	if errs[0].Message != "a" || errs[1].Message != "c" {
		t.Errorf("Errors() = %v", errs)
	}
}

func TestResult_CountBySeverity(t *testing.T) {
	r := NewResult()
	r.Add(Diagnostic{Severity: SeverityError})
	r.Add(Diagnostic{Severity: SeverityWarning})
	r.Add(Diagnostic{Severity: SeverityWarning})

	if n := r.CountBySeverity(SeverityWarning); n != 2 {
		t.Errorf("warnings = %d; want 2", n)
	}
	if n := r.CountBySeverity(SeverityInformation); n != 0 {
		t.Errorf("information = %d; want 0", n)
	}
}

func TestResult_PoolReuse(t *testing.T) {
	r := AcquireResult()
	r.Add(Diagnostic{
		Severity: SeverityError,
		Node:     &ast.Literal{Value: "x"},
	})
	r.Release()

	r2 := AcquireResult()
	defer r2.Release()
	if !r2.Valid || len(r2.Diagnostics) != 0 {
		t.Errorf("pooled result not reset: valid=%v diagnostics=%d", r2.Valid, len(r2.Diagnostics))
	}
}

func TestRelease_NilIsSafe(t *testing.T) {
	var r *Result
	r.Release()
}
