package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		reason   string
		value    interface{}
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "delta out of range",
			param:    "delta",
			reason:   "must be in (0, 1)",
			value:    1.5,
			wantMsg:  "adwin: validation failed for parameter 'delta': must be in (0, 1) (got: 1.5)",
			hasStack: true,
		},
		{
			name:     "non-positive max buckets",
			param:    "maxBuckets",
			reason:   "must be >= 1",
			value:    0,
			wantMsg:  "adwin: validation failed for parameter 'maxBuckets': must be >= 1 (got: 0)",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.param, tt.reason, tt.value)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var valErr *ValidationError
			if !As(err, &valErr) {
				t.Error("Error should be castable to *ValidationError")
			}
		})
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("ADWIN.Update", "value must be finite")

	want := "adwin: ADWIN.Update: value must be finite"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestDriftWarning(t *testing.T) {
	w := NewDriftWarning("ADWIN", 120, 0.75, 400)

	msg := w.Error()
	if !strings.Contains(msg, "ADWIN") || !strings.Contains(msg, "width=120") {
		t.Errorf("unexpected warning message: %s", msg)
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewDriftWarning("ADWIN", 10, 0.0, 64)
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	var dw *DriftWarning
	if !As(captured, &dw) {
		t.Error("captured warning should be castable to *DriftWarning")
	}
}

func TestCheckScalar(t *testing.T) {
	if err := CheckScalar("test", 1.0, 1); err != nil {
		t.Errorf("finite value should pass: %v", err)
	}
	if err := CheckScalar("test", math.NaN(), 2); err == nil {
		t.Error("NaN should fail the stability check")
	}
	if err := CheckScalar("test", math.Inf(1), 3); err == nil {
		t.Error("Inf should fail the stability check")
	}
}

func TestCheckValues(t *testing.T) {
	err := CheckValues("test", []float64{1.0, math.NaN(), 2.0, math.Inf(-1)}, 5)
	if err == nil {
		t.Fatal("expected instability error")
	}
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatal("error should be castable to *NumericalInstabilityError")
	}
	if len(numErr.Values) != 2 {
		t.Errorf("expected 2 unstable values, got %d", len(numErr.Values))
	}
}

func TestSafeDivide(t *testing.T) {
	if got := SafeDivide(1.0, 0.0); got != 0 {
		t.Errorf("SafeDivide by zero = %v, want 0", got)
	}
	if got := SafeDivide(6.0, 2.0); got != 3.0 {
		t.Errorf("SafeDivide(6,2) = %v, want 3", got)
	}
}
