package searchvalidator

import (
	"testing"

	"github.com/searchql/validator/pkg/logger"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.MaxDiagnostics != 0 {
		t.Errorf("MaxDiagnostics = %d; want 0 (unlimited)", o.MaxDiagnostics)
	}
	if len(o.SortValues) == 0 {
		t.Error("SortValues should default to the built-in set")
	}
	if !o.CollectMetrics {
		t.Error("CollectMetrics should default to true")
	}
	if o.Logger == nil {
		t.Error("Logger should default to the package logger")
	}
}

func TestOptions_Apply(t *testing.T) {
	o := DefaultOptions()
	custom := logger.New(nil, logger.LevelNone)
	for _, opt := range []Option{
		WithMaxDiagnostics(5),
		WithSortValues([]string{"stars-desc"}),
		WithMetrics(false),
		WithLogger(custom),
	} {
		opt(o)
	}

	if o.MaxDiagnostics != 5 {
		t.Errorf("MaxDiagnostics = %d; want 5", o.MaxDiagnostics)
	}
	if len(o.SortValues) != 1 || o.SortValues[0] != "stars-desc" {
		t.Errorf("SortValues = %v", o.SortValues)
	}
	if o.CollectMetrics {
		t.Error("CollectMetrics = true; want false")
	}
	if o.Logger != custom {
		t.Error("Logger not overridden")
	}
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Message: "Unknown variable"}
	if got := d.String(); got != "error: Unknown variable" {
		t.Errorf("String = %q", got)
	}
}

func TestDialect(t *testing.T) {
	if !DialectGitHub.IsValid() {
		t.Error("github dialect should be valid")
	}
	if Dialect("jira").IsValid() {
		t.Error("unknown dialect should be invalid")
	}
}
