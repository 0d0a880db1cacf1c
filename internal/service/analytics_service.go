package service

import (
	"context"
	"time"

	"github.com/onurcolak/gateway-dashboard/internal/analytics"
	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/hooks"
	"github.com/onurcolak/gateway-dashboard/pkg/validator"
)

type AnalyticsService struct {
	data  domain.AnalyticsData
	hooks hooks.Hooks
	now   func() time.Time
}

func NewAnalyticsService(data domain.AnalyticsData, h hooks.Hooks) *AnalyticsService {
	return &AnalyticsService{data: data, hooks: h, now: time.Now}
}

// Selection is a date filter as sent by the range picker. From and To are
// only read for the custom preset, or when no preset is given.
type Selection struct {
	Preset string
	From   string
	To     string
}

type Report struct {
	Preset     string                      `json:"preset"`
	Range      domain.DateRange            `json:"range"`
	Volume     []domain.VolumePoint        `json:"messageVolume"`
	Summary    analytics.VolumeSummary     `json:"summary"`
	Delivery   analytics.DeliveryBreakdown `json:"delivery"`
	Counts     domain.DeliveryRate         `json:"deliveryCounts"`
	Engagement domain.EngagementMetrics    `json:"engagement"`
	Presets    []analytics.Preset          `json:"presets"`
}

// today anchors the presets. The series is historical, so its newest day
// stands in for today when there is one.
func (s *AnalyticsService) today() time.Time {
	if latest, ok := analytics.LatestDay(s.data.MessageVolume); ok {
		return latest
	}
	return s.now()
}

func (s *AnalyticsService) resolve(sel Selection) (string, domain.DateRange, error) {
	preset := sel.Preset
	if preset == "" && (sel.From != "" || sel.To != "") {
		preset = string(analytics.PresetCustom)
	}
	if preset == "" {
		preset = string(analytics.DefaultPreset)
	}

	if preset == string(analytics.PresetCustom) {
		if sel.From == "" || sel.To == "" {
			return "", domain.DateRange{}, validator.FieldError("from", "custom range needs both from and to")
		}
		r, err := analytics.ParseRange(sel.From, sel.To)
		if err != nil {
			return "", domain.DateRange{}, validator.FieldError("from", err.Error())
		}
		return preset, r, nil
	}

	if !analytics.IsPreset(preset) {
		return "", domain.DateRange{}, validator.FieldError("preset", "unknown preset "+preset)
	}

	return preset, analytics.Resolve(analytics.Preset(preset), s.today(), domain.DateRange{}), nil
}

func (s *AnalyticsService) Report(ctx context.Context, sel Selection) (*Report, error) {
	preset, r, err := s.resolve(sel)
	if err != nil {
		return nil, err
	}

	volume := analytics.FilterVolume(s.data.MessageVolume, r)

	return &Report{
		Preset:     preset,
		Range:      r,
		Volume:     volume,
		Summary:    analytics.SummarizeVolume(volume),
		Delivery:   analytics.Delivery(s.data.DeliveryRate),
		Counts:     s.data.DeliveryRate,
		Engagement: s.data.EngagementMetrics,
		Presets:    analytics.Presets(),
	}, nil
}

// ChangeRange reports a picker change to the host and returns the range it
// resolved to. Choosing a preset raises both the preset and the date callback.
func (s *AnalyticsService) ChangeRange(ctx context.Context, sel Selection) (string, domain.DateRange, error) {
	preset, r, err := s.resolve(sel)
	if err != nil {
		return "", domain.DateRange{}, err
	}

	if sel.Preset != "" {
		s.hooks.OnPresetChange(ctx, preset)
	}
	s.hooks.OnDateChange(ctx, r)

	return preset, r, nil
}

// ResetRange goes back to the last seven days.
func (s *AnalyticsService) ResetRange(ctx context.Context) (string, domain.DateRange) {
	preset, r, _ := s.resolve(Selection{Preset: string(analytics.DefaultPreset)})

	s.hooks.OnDateChange(ctx, r)
	s.hooks.OnPresetChange(ctx, preset)

	return preset, r
}

// Export renders the selected volume series as CSV.
func (s *AnalyticsService) Export(ctx context.Context, sel Selection) ([]byte, domain.DateRange, error) {
	_, r, err := s.resolve(sel)
	if err != nil {
		return nil, domain.DateRange{}, err
	}

	body, err := analytics.ExportCSV(analytics.FilterVolume(s.data.MessageVolume, r))
	if err != nil {
		return nil, r, err
	}

	s.hooks.OnExportReport(ctx, r)
	return body, r, nil
}
