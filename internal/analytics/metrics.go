// Package analytics computes the numbers shown on the analytics and overview
// screens from the raw series.
package analytics

import (
	"math"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

type VolumeSummary struct {
	Total       int     `json:"total"`
	Sent        int     `json:"sent"`
	Received    int     `json:"received"`
	AvgSent     float64 `json:"avgSent"`
	AvgReceived float64 `json:"avgReceived"`
	Days        int     `json:"days"`
}

// DeliveryBreakdown holds whole-number percentages. Every share is taken of
// delivered+failed+pending; read is not part of that total, so the shares do
// not have to add up to 100. ReadRate is read over delivered.
type DeliveryBreakdown struct {
	Delivered   int `json:"delivered"`
	Read        int `json:"read"`
	Failed      int `json:"failed"`
	Pending     int `json:"pending"`
	SuccessRate int `json:"successRate"`
	ReadRate    int `json:"readRate"`
	Total       int `json:"total"`
}

// Percent rounds part/total*100 half up. A zero total yields 0.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(part)/float64(total)*100 + 0.5))
}

func Delivery(d domain.DeliveryRate) DeliveryBreakdown {
	total := d.Delivered + d.Failed + d.Pending

	readBase := d.Delivered
	if readBase == 0 {
		readBase = 1
	}

	return DeliveryBreakdown{
		Delivered:   Percent(d.Delivered, total),
		Read:        Percent(d.Read, total),
		Failed:      Percent(d.Failed, total),
		Pending:     Percent(d.Pending, total),
		SuccessRate: Percent(d.Delivered, total),
		ReadRate:    Percent(d.Read, readBase),
		Total:       total,
	}
}

// FilterVolume keeps the points dated within r. Points with an unreadable
// date are dropped.
func FilterVolume(points []domain.VolumePoint, r domain.DateRange) []domain.VolumePoint {
	out := make([]domain.VolumePoint, 0, len(points))
	for _, p := range points {
		at, err := dateparse.ParseIn(p.Date, time.UTC)
		if err != nil {
			logger.Warnf("Skipping volume point with bad date %q: %v", p.Date, err)
			continue
		}
		if Contains(r, at) {
			out = append(out, p)
		}
	}
	return out
}

func SummarizeVolume(points []domain.VolumePoint) VolumeSummary {
	sent := make(stats.Float64Data, len(points))
	received := make(stats.Float64Data, len(points))
	for i, p := range points {
		sent[i] = float64(p.Sent)
		received[i] = float64(p.Received)
	}

	s := VolumeSummary{
		Sent:     int(sum(sent)),
		Received: int(sum(received)),
		Days:     len(points),
	}
	s.Total = s.Sent + s.Received
	s.AvgSent = mean(sent)
	s.AvgReceived = mean(received)

	return s
}

// LatestDay is the date of the newest point, or false for an empty series.
func LatestDay(points []domain.VolumePoint) (time.Time, bool) {
	var latest time.Time
	for _, p := range points {
		at, err := dateparse.ParseIn(p.Date, time.UTC)
		if err != nil {
			continue
		}
		if at.After(latest) {
			latest = at
		}
	}
	return Day(latest), !latest.IsZero()
}

// ExportCSV renders the series as a CSV report with a header row.
func ExportCSV(points []domain.VolumePoint) ([]byte, error) {
	if points == nil {
		points = []domain.VolumePoint{}
	}
	return gocsv.MarshalBytes(&points)
}

func sum(data stats.Float64Data) float64 {
	if len(data) == 0 {
		return 0
	}
	v, err := stats.Sum(data)
	if err != nil {
		return 0
	}
	return v
}

func mean(data stats.Float64Data) float64 {
	if len(data) == 0 {
		return 0
	}
	v, err := stats.Mean(data)
	if err != nil {
		return 0
	}
	v, _ = stats.Round(v, 1)
	return v
}
