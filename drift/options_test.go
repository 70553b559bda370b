package drift

import (
	"testing"

	"github.com/YuminosukeSato/adwin/pkg/errors"
)

func TestNewADWINDefaults(t *testing.T) {
	a, err := NewADWIN()
	if err != nil {
		t.Fatalf("NewADWIN() error = %v", err)
	}

	if a.delta != DefaultDelta {
		t.Errorf("delta = %v, want %v", a.delta, DefaultDelta)
	}
	if a.maxBuckets != DefaultMaxBuckets {
		t.Errorf("maxBuckets = %v, want %v", a.maxBuckets, DefaultMaxBuckets)
	}
	if a.minClock != DefaultMinClock {
		t.Errorf("minClock = %v, want %v", a.minClock, DefaultMinClock)
	}
	if a.minLengthWindow != DefaultMinLengthWindow {
		t.Errorf("minLengthWindow = %v, want %v", a.minLengthWindow, DefaultMinLengthWindow)
	}
	if a.minLengthSubWindow != DefaultMinLengthSubWindow {
		t.Errorf("minLengthSubWindow = %v, want %v", a.minLengthSubWindow, DefaultMinLengthSubWindow)
	}
	if a.GetWidth() != 0 || a.GetTime() != 0 {
		t.Error("fresh detector should have empty window")
	}
}

func TestNewADWINValidation(t *testing.T) {
	tests := []struct {
		name    string
		options []ADWINOption
		wantErr bool
	}{
		{
			name:    "valid custom configuration",
			options: []ADWINOption{WithDelta(0.01), WithMaxBuckets(3), WithMinClock(16)},
			wantErr: false,
		},
		{
			name:    "delta zero",
			options: []ADWINOption{WithDelta(0)},
			wantErr: true,
		},
		{
			name:    "delta one",
			options: []ADWINOption{WithDelta(1)},
			wantErr: true,
		},
		{
			name:    "delta negative",
			options: []ADWINOption{WithDelta(-0.5)},
			wantErr: true,
		},
		{
			name:    "max buckets zero",
			options: []ADWINOption{WithMaxBuckets(0)},
			wantErr: true,
		},
		{
			name:    "min clock zero",
			options: []ADWINOption{WithMinClock(0)},
			wantErr: true,
		},
		{
			name:    "negative min length window",
			options: []ADWINOption{WithMinLengthWindow(-1)},
			wantErr: true,
		},
		{
			name:    "negative min length sub window",
			options: []ADWINOption{WithMinLengthSubWindow(-1)},
			wantErr: true,
		},
		{
			name:    "nil logger",
			options: []ADWINOption{WithLogger(nil)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewADWIN(tt.options...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewADWIN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var valErr *errors.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("error should be a ValidationError, got %T", err)
				}
				return
			}
			if a == nil {
				t.Fatal("valid configuration returned nil detector")
			}
		})
	}
}
