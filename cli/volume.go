package cli

import (
	"math"
	"strconv"
	"strings"
)

type volumeMode int

const (
	volumeSet volumeMode = iota
	volumeIncrement
	volumeDecrement
)

// volumeCommand is a parsed set-volume argument: "0.4", "0.05+" or "0.05-".
type volumeCommand struct {
	mode  volumeMode
	value float64
}

func parseVolume(s string) (volumeCommand, error) {
	mode := volumeSet
	num := s
	switch {
	case strings.HasSuffix(s, "+"):
		mode, num = volumeIncrement, strings.TrimSuffix(s, "+")
	case strings.HasSuffix(s, "-"):
		mode, num = volumeDecrement, strings.TrimSuffix(s, "-")
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return volumeCommand{}, usageErrorf("invalid volume %q: invalid number", s)
	}
	if mode == volumeSet && (v < 0 || v > 1) {
		return volumeCommand{}, usageErrorf("invalid volume %q: value must be 0-1", s)
	}
	return volumeCommand{mode: mode, value: v}, nil
}

// apply returns the volume to set given the current one. Relative changes
// are computed in hundredths and clamped to [0, 1].
func (c volumeCommand) apply(current float64) float64 {
	switch c.mode {
	case volumeIncrement:
		return adjustVolume(current, c.value)
	case volumeDecrement:
		return adjustVolume(current, -c.value)
	default:
		return c.value
	}
}

func (c volumeCommand) relative() bool {
	return c.mode != volumeSet
}

func adjustVolume(current, delta float64) float64 {
	steps := math.Round(current*100) + math.Round(delta*100)
	return math.Max(0, math.Min(100, steps)) / 100
}
