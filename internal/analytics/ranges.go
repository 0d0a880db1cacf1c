package analytics

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

type Preset string

const (
	PresetToday      Preset = "today"
	PresetYesterday  Preset = "yesterday"
	PresetLast7Days  Preset = "last7Days"
	PresetLast30Days Preset = "last30Days"
	PresetThisMonth  Preset = "thisMonth"
	PresetLastMonth  Preset = "lastMonth"
	PresetCustom     Preset = "custom"

	DefaultPreset = PresetLast7Days
)

func Presets() []Preset {
	return []Preset{PresetToday, PresetYesterday, PresetLast7Days, PresetLast30Days, PresetThisMonth, PresetLastMonth, PresetCustom}
}

func IsPreset(p string) bool {
	return slices.Contains(Presets(), Preset(p))
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Resolve turns a preset into a date range ending relative to today. The
// custom preset keeps current; an unknown preset falls back to last 7 days.
func Resolve(preset Preset, today time.Time, current domain.DateRange) domain.DateRange {
	t := Day(today)

	switch preset {
	case PresetToday:
		return domain.DateRange{From: t, To: t}
	case PresetYesterday:
		y := t.AddDate(0, 0, -1)
		return domain.DateRange{From: y, To: y}
	case PresetLast30Days:
		return domain.DateRange{From: t.AddDate(0, 0, -30), To: t}
	case PresetThisMonth:
		return domain.DateRange{From: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), To: t}
	case PresetLastMonth:
		return domain.DateRange{
			From: time.Date(t.Year(), t.Month()-1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(t.Year(), t.Month(), 0, 0, 0, 0, 0, time.UTC),
		}
	case PresetCustom:
		return current
	default:
		return domain.DateRange{From: t.AddDate(0, 0, -7), To: t}
	}
}

// ParseRange reads a custom range in any common date layout.
func ParseRange(from, to string) (domain.DateRange, error) {
	f, err := dateparse.ParseIn(strings.TrimSpace(from), time.UTC)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid from date %q: %w", from, err)
	}

	t, err := dateparse.ParseIn(strings.TrimSpace(to), time.UTC)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid to date %q: %w", to, err)
	}

	r := domain.DateRange{From: Day(f), To: Day(t)}
	if r.To.Before(r.From) {
		return domain.DateRange{}, fmt.Errorf("date range ends before it starts")
	}

	return r, nil
}

// Contains reports whether the day of t lies within r, both ends included.
func Contains(r domain.DateRange, t time.Time) bool {
	d := Day(t)
	return !d.Before(Day(r.From)) && !d.After(Day(r.To))
}
