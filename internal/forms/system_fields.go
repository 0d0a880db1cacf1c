package forms

import (
	"fmt"
	"math"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

type fieldRange struct {
	min, max, step float64
	get            func(domain.SystemParameters) int
	set            func(*domain.SystemParameters, int)
}

var systemFields = map[string]fieldRange{
	"messageRetention": {
		min: 1, max: 365, step: 1,
		get: func(p domain.SystemParameters) int { return p.MessageRetention },
		set: func(p *domain.SystemParameters, v int) { p.MessageRetention = v },
	},
	"rateLimit": {
		min: 1, max: 1000, step: 10,
		get: func(p domain.SystemParameters) int { return p.RateLimit },
		set: func(p *domain.SystemParameters, v int) { p.RateLimit = v },
	},
	"maxFileSize": {
		min: 1, max: 100, step: 1,
		get: func(p domain.SystemParameters) int { return p.MaxFileSize },
		set: func(p *domain.SystemParameters, v int) { p.MaxFileSize = v },
	},
}

// Source names the input a numeric value came from.
type Source string

const (
	SourceSlider Source = "slider"
	SourceText   Source = "text"
)

// SystemField returns the synced input for one numeric system parameter.
func SystemField(params domain.SystemParameters, field string) (*SyncedNumber, error) {
	r, ok := systemFields[field]
	if !ok {
		return nil, fmt.Errorf("system field %q: %w", field, domain.ErrNotFound)
	}
	return NewSyncedNumber(field, r.min, r.max, r.step, float64(r.get(params))), nil
}

// ApplySystemField updates one numeric parameter from a slider or text input
// and returns the new parameters with the synced field state.
func ApplySystemField(params domain.SystemParameters, field string, source Source, raw string, value float64) (domain.SystemParameters, domain.NumericField, error) {
	n, err := SystemField(params, field)
	if err != nil {
		return params, domain.NumericField{}, err
	}

	switch source {
	case SourceSlider:
		n.SetFromSlider(value)
	case SourceText:
		if err := n.SetFromText(raw); err != nil {
			return params, n.Field(), err
		}
	default:
		return params, n.Field(), fmt.Errorf("unknown input source %q", source)
	}

	systemFields[field].set(&params, int(math.Round(n.Value())))
	// The stored value is an int; re-read it so both inputs show what was kept.
	n, _ = SystemField(params, field)

	return params, n.Field(), nil
}

// SystemFieldNames lists the numeric system parameters with synced inputs.
func SystemFieldNames() []string {
	return []string{"messageRetention", "rateLimit", "maxFileSize"}
}
