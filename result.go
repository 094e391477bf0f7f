package searchvalidator

import "sync"

// Result contains the outcome of validating one query document.
// Use Release() to return it to the pool when done.
type Result struct {
	// Valid is true if no error-severity diagnostics were found.
	Valid bool

	// Diagnostics contains all findings, in document order.
	Diagnostics []Diagnostic
}

// defaultDiagnosticCapacity is the pre-allocated capacity for the
// Diagnostics slice. Most documents produce fewer findings.
const defaultDiagnosticCapacity = 16

var resultPool = sync.Pool{
	New: func() any {
		return &Result{
			Diagnostics: make([]Diagnostic, 0, defaultDiagnosticCapacity),
		}
	},
}

// NewResult creates a new empty Result.
func NewResult() *Result {
	return &Result{
		Valid:       true,
		Diagnostics: make([]Diagnostic, 0, defaultDiagnosticCapacity),
	}
}

// AcquireResult gets a Result from the pool. The result starts valid
// with no diagnostics.
func AcquireResult() *Result {
	r := resultPool.Get().(*Result)
	r.Reset()
	return r
}

// Release returns the Result to the pool. Do not use the Result after
// calling Release.
func (r *Result) Release() {
	if r == nil {
		return
	}
	// Clear node references so the tree can be collected.
	for i := range r.Diagnostics {
		r.Diagnostics[i] = Diagnostic{}
	}
	if cap(r.Diagnostics) <= 1024 {
		resultPool.Put(r)
	}
}

// Reset clears the result for reuse.
func (r *Result) Reset() {
	r.Valid = true
	r.Diagnostics = r.Diagnostics[:0]
}

// Add appends a diagnostic and updates Valid.
func (r *Result) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	if d.IsError() {
		r.Valid = false
	}
}

// AddAll appends multiple diagnostics.
func (r *Result) AddAll(ds []Diagnostic) {
	for _, d := range ds {
		r.Add(d)
	}
}

// Errors returns only the error-severity diagnostics.
func (r *Result) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.IsError() {
			out = append(out, d)
		}
	}
	return out
}

// CountBySeverity returns the number of diagnostics with the given
// severity.
func (r *Result) CountBySeverity(s Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == s {
			n++
		}
	}
	return n
}
