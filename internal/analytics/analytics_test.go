package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/pkg/seed"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDelivery_DenominatorExcludesRead(t *testing.T) {
	b := Delivery(domain.DeliveryRate{Delivered: 85, Read: 72, Failed: 8, Pending: 7})

	assert.Equal(t, 100, b.Total)
	assert.Equal(t, 85, b.Delivered)
	assert.Equal(t, 72, b.Read)
	assert.Equal(t, 8, b.Failed)
	assert.Equal(t, 7, b.Pending)
	assert.Equal(t, 85, b.SuccessRate)
	assert.Equal(t, 85, b.ReadRate)
}

func TestDelivery_ReadShareCanExceedHundred(t *testing.T) {
	b := Delivery(domain.DeliveryRate{Delivered: 1, Read: 5, Failed: 1, Pending: 0})

	assert.Equal(t, 250, b.Read)
	assert.Equal(t, 500, b.ReadRate)
}

func TestDelivery_ZeroTotal(t *testing.T) {
	b := Delivery(domain.DeliveryRate{Read: 3})

	assert.Zero(t, b.Delivered)
	assert.Zero(t, b.Read)
	assert.Equal(t, 300, b.ReadRate, "read rate divides by one when nothing was delivered")
}

func TestPercent_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, 13, Percent(1, 8))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 0, Percent(5, 0))
}

func TestSummarizeVolume(t *testing.T) {
	s := SummarizeVolume(seed.Defaults().Analytics.MessageVolume)

	assert.Equal(t, 1100, s.Sent)
	assert.Equal(t, 832, s.Received)
	assert.Equal(t, 1932, s.Total)
	assert.Equal(t, 7, s.Days)
	assert.InDelta(t, 157.1, s.AvgSent, 1e-9)
	assert.InDelta(t, 118.9, s.AvgReceived, 1e-9)

	empty := SummarizeVolume(nil)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.AvgSent)
}

func TestResolve(t *testing.T) {
	today := time.Date(2023, 6, 7, 15, 30, 0, 0, time.UTC)
	current := domain.DateRange{From: date(2023, 1, 1), To: date(2023, 1, 2)}

	tests := []struct {
		preset Preset
		from   time.Time
		to     time.Time
	}{
		{PresetToday, date(2023, 6, 7), date(2023, 6, 7)},
		{PresetYesterday, date(2023, 6, 6), date(2023, 6, 6)},
		{PresetLast7Days, date(2023, 5, 31), date(2023, 6, 7)},
		{PresetLast30Days, date(2023, 5, 8), date(2023, 6, 7)},
		{PresetThisMonth, date(2023, 6, 1), date(2023, 6, 7)},
		{PresetLastMonth, date(2023, 5, 1), date(2023, 5, 31)},
		{PresetCustom, current.From, current.To},
		{"fortnight", date(2023, 5, 31), date(2023, 6, 7)},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			r := Resolve(tt.preset, today, current)
			assert.Equal(t, tt.from, r.From)
			assert.Equal(t, tt.to, r.To)
		})
	}
}

func TestResolve_LastMonthInJanuary(t *testing.T) {
	r := Resolve(PresetLastMonth, date(2024, 1, 15), domain.DateRange{})

	assert.Equal(t, date(2023, 12, 1), r.From)
	assert.Equal(t, date(2023, 12, 31), r.To)
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("2023-06-02", "June 4, 2023")
	require.NoError(t, err)
	assert.Equal(t, date(2023, 6, 2), r.From)
	assert.Equal(t, date(2023, 6, 4), r.To)

	_, err = ParseRange("2023-06-05", "2023-06-01")
	assert.Error(t, err)

	_, err = ParseRange("yesterday-ish", "2023-06-01")
	assert.Error(t, err)
}

func TestFilterVolume(t *testing.T) {
	points := seed.Defaults().Analytics.MessageVolume

	got := FilterVolume(points, domain.DateRange{From: date(2023, 6, 2), To: date(2023, 6, 4)})
	require.Len(t, got, 3)
	assert.Equal(t, "2023-06-02", got[0].Date)
	assert.Equal(t, "2023-06-04", got[2].Date)

	latest, ok := LatestDay(points)
	require.True(t, ok)
	assert.Equal(t, date(2023, 6, 7), latest)

	_, ok = LatestDay(nil)
	assert.False(t, ok)
}

func TestExportCSV(t *testing.T) {
	out, err := ExportCSV(seed.Defaults().Analytics.MessageVolume[:2])
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,sent,received", lines[0])
	assert.Equal(t, "2023-06-01,120,85", lines[1])
}
