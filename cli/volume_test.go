package cli

import (
	"errors"
	"testing"
)

func TestParseVolume(t *testing.T) {
	tests := []struct {
		input   string
		want    volumeCommand
		wantErr bool
	}{
		{"0.5", volumeCommand{volumeSet, 0.5}, false},
		{"0", volumeCommand{volumeSet, 0}, false},
		{"1", volumeCommand{volumeSet, 1}, false},
		{"0.05+", volumeCommand{volumeIncrement, 0.05}, false},
		{"0.1-", volumeCommand{volumeDecrement, 0.1}, false},
		{"2+", volumeCommand{volumeIncrement, 2}, false},
		{"1.5", volumeCommand{}, true},
		{"-0.1", volumeCommand{}, true},
		{"loud", volumeCommand{}, true},
		{"+", volumeCommand{}, true},
		{"NaN", volumeCommand{}, true},
		{"", volumeCommand{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseVolume(tt.input)
			if tt.wantErr {
				var usageErr *UsageError
				if !errors.As(err, &usageErr) {
					t.Fatalf("parseVolume(%q) error = %v, want UsageError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVolume(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseVolume(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAdjustVolume(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		delta   float64
		want    float64
	}{
		{"increment", 0.5, 0.1, 0.6},
		{"decrement", 0.5, -0.25, 0.25},
		{"clamp high", 0.95, 0.1, 1},
		{"clamp low", 0.05, -0.1, 0},
		{"rounds current", 0.333333, 0.1, 0.43},
		{"above nominal clamps", 1.4, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adjustVolume(tt.current, tt.delta); got != tt.want {
				t.Errorf("adjustVolume(%v, %v) = %v, want %v", tt.current, tt.delta, got, tt.want)
			}
		})
	}
}

func TestVolumeCommandApply(t *testing.T) {
	if got := (volumeCommand{volumeSet, 0.3}).apply(0.9); got != 0.3 {
		t.Errorf("set apply = %v, want 0.3", got)
	}
	if got := (volumeCommand{volumeIncrement, 0.2}).apply(0.5); got != 0.7 {
		t.Errorf("increment apply = %v, want 0.7", got)
	}
	if got := (volumeCommand{volumeDecrement, 0.2}).apply(0.5); got != 0.3 {
		t.Errorf("decrement apply = %v, want 0.3", got)
	}
}
