// Package forms holds input state shared by the settings panels.
package forms

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

// SyncedNumber is one numeric setting edited through both a slider and a
// text box. It holds a single value so the two inputs can never disagree.
type SyncedNumber struct {
	field string
	min   float64
	max   float64
	step  float64
	value float64
}

func NewSyncedNumber(field string, min, max, step, value float64) *SyncedNumber {
	if step <= 0 {
		step = 1
	}
	n := &SyncedNumber{field: field, min: min, max: max, step: step}
	n.value = n.clamp(value)
	return n
}

// SetFromSlider snaps v to the nearest step from min, then clamps.
func (n *SyncedNumber) SetFromSlider(v float64) {
	snapped := n.min + math.Round((v-n.min)/n.step)*n.step
	n.value = n.clamp(snapped)
}

// SetFromText parses raw and clamps it. Text input is not snapped to step.
func (n *SyncedNumber) SetFromText(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %q is not a number", n.field, raw)
	}
	n.value = n.clamp(v)
	return nil
}

func (n *SyncedNumber) Value() float64 {
	return n.value
}

func (n *SyncedNumber) Text() string {
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

func (n *SyncedNumber) Field() domain.NumericField {
	return domain.NumericField{
		Field:  n.field,
		Value:  n.value,
		Slider: n.value,
		Text:   n.Text(),
		Min:    n.min,
		Max:    n.max,
		Step:   n.step,
	}
}

func (n *SyncedNumber) clamp(v float64) float64 {
	return math.Min(n.max, math.Max(n.min, v))
}
