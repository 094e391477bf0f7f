package searchvalidator

import (
	"sync/atomic"
	"time"
)

// Metrics tracks validation counters using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	diagnosticsTotal atomic.Uint64
	errorsTotal      atomic.Uint64
	warningsTotal    atomic.Uint64

	// Timing, stored as nanoseconds.
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so the first value becomes the minimum.
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// RecordValidation records a completed validation.
func (m *Metrics) RecordValidation(duration time.Duration, diagnostics []Diagnostic) {
	m.validationsTotal.Add(1)

	valid := true
	for _, d := range diagnostics {
		m.diagnosticsTotal.Add(1)
		switch d.Severity {
		case SeverityError:
			m.errorsTotal.Add(1)
			valid = false
		case SeverityWarning:
			m.warningsTotal.Add(1)
		}
	}
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.validationTimeTotal.Add(ns)
	for {
		min := m.validationTimeMin.Load()
		if ns >= min || m.validationTimeMin.CompareAndSwap(min, ns) {
			break
		}
	}
	for {
		max := m.validationTimeMax.Load()
		if ns <= max || m.validationTimeMax.CompareAndSwap(max, ns) {
			break
		}
	}
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	ValidationsTotal uint64
	ValidationsValid uint64
	DiagnosticsTotal uint64
	ErrorsTotal      uint64
	WarningsTotal    uint64
	TimeTotal        time.Duration
	TimeMin          time.Duration
	TimeMax          time.Duration
}

// Snapshot returns a consistent-enough copy of the current counters.
func (m *Metrics) Snapshot() Snapshot {
	min := m.validationTimeMin.Load()
	if min == ^uint64(0) {
		min = 0
	}
	return Snapshot{
		ValidationsTotal: m.validationsTotal.Load(),
		ValidationsValid: m.validationsValid.Load(),
		DiagnosticsTotal: m.diagnosticsTotal.Load(),
		ErrorsTotal:      m.errorsTotal.Load(),
		WarningsTotal:    m.warningsTotal.Load(),
		TimeTotal:        time.Duration(m.validationTimeTotal.Load()),
		TimeMin:          time.Duration(min),
		TimeMax:          time.Duration(m.validationTimeMax.Load()),
	}
}
