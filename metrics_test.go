package searchvalidator

import (
	"sync"
	"testing"
	"time"
)

func TestMetrics_RecordValidation(t *testing.T) {
	m := NewMetrics()
	m.RecordValidation(2*time.Millisecond, []Diagnostic{
		{Severity: SeverityError},
		{Severity: SeverityWarning},
	})
	m.RecordValidation(1*time.Millisecond, nil)

	snap := m.Snapshot()
	if snap.ValidationsTotal != 2 {
		t.Errorf("ValidationsTotal = %d; want 2", snap.ValidationsTotal)
	}
	if snap.ValidationsValid != 1 {
		t.Errorf("ValidationsValid = %d; want 1", snap.ValidationsValid)
	}
	if snap.DiagnosticsTotal != 2 {
		t.Errorf("DiagnosticsTotal = %d; want 2", snap.DiagnosticsTotal)
	}
	if snap.ErrorsTotal != 1 || snap.WarningsTotal != 1 {
		t.Errorf("errors/warnings = %d/%d; want 1/1", snap.ErrorsTotal, snap.WarningsTotal)
	}
	if snap.TimeMin != 1*time.Millisecond {
		t.Errorf("TimeMin = %v; want 1ms", snap.TimeMin)
	}
	if snap.TimeMax != 2*time.Millisecond {
		t.Errorf("TimeMax = %v; want 2ms", snap.TimeMax)
	}
	if snap.TimeTotal != 3*time.Millisecond {
		t.Errorf("TimeTotal = %v; want 3ms", snap.TimeTotal)
	}
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	snap := NewMetrics().Snapshot()
	if snap.TimeMin != 0 {
		t.Errorf("TimeMin = %v; want 0 before any recording", snap.TimeMin)
	}
}

func TestMetrics_ConcurrentRecording(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.RecordValidation(time.Microsecond, []Diagnostic{{Severity: SeverityError}})
			}
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	if snap.ValidationsTotal != 1600 {
		t.Errorf("ValidationsTotal = %d; want 1600", snap.ValidationsTotal)
	}
	if snap.ErrorsTotal != 1600 {
		t.Errorf("ErrorsTotal = %d; want 1600", snap.ErrorsTotal)
	}
}
