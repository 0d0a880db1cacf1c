// Package hooks defines the callbacks the dashboard raises towards its host.
// The dashboard never talks to a gateway itself; a host supplies a Hooks
// implementation that does.
package hooks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

type Hooks interface {
	OnSendMessage(ctx context.Context, msg domain.OutgoingMessage)
	OnResendMessage(ctx context.Context, messageID string)
	OnDeleteMessage(ctx context.Context, messageID string)
	OnCreate(ctx context.Context, kind domain.EntityKind, payload any)
	OnEdit(ctx context.Context, kind domain.EntityKind, id string, payload any)
	OnDelete(ctx context.Context, kind domain.EntityKind, id string)
	OnDisconnect(ctx context.Context, deviceID string)
	OnDevicePaired(ctx context.Context, deviceID string)
	OnRefresh(ctx context.Context, kind domain.EntityKind)
	OnDateChange(ctx context.Context, r domain.DateRange)
	OnPresetChange(ctx context.Context, preset string)
	OnSettingsSaved(ctx context.Context, section string, payload any)
	OnExportReport(ctx context.Context, r domain.DateRange)
}

var (
	_ Hooks = LogHooks{}
	_ Hooks = (*Recorder)(nil)
)

// LogHooks records every callback in the process log.
type LogHooks struct{}

func (LogHooks) OnSendMessage(ctx context.Context, msg domain.OutgoingMessage) {
	logger.L().Info("send message",
		zap.Int("recipients", len(msg.Recipients)),
		zap.Bool("template", msg.Template != nil),
		zap.Int("attachments", len(msg.Attachments)),
	)
}

func (LogHooks) OnResendMessage(ctx context.Context, messageID string) {
	logger.L().Info("resend message", zap.String("id", messageID))
}

func (LogHooks) OnDeleteMessage(ctx context.Context, messageID string) {
	logger.L().Info("delete message", zap.String("id", messageID))
}

func (LogHooks) OnCreate(ctx context.Context, kind domain.EntityKind, payload any) {
	logger.L().Info("create", zap.String("kind", string(kind)), zap.Any("payload", payload))
}

func (LogHooks) OnEdit(ctx context.Context, kind domain.EntityKind, id string, payload any) {
	logger.L().Info("edit", zap.String("kind", string(kind)), zap.String("id", id), zap.Any("payload", payload))
}

func (LogHooks) OnDelete(ctx context.Context, kind domain.EntityKind, id string) {
	logger.L().Info("delete", zap.String("kind", string(kind)), zap.String("id", id))
}

func (LogHooks) OnDisconnect(ctx context.Context, deviceID string) {
	logger.L().Info("disconnect device", zap.String("id", deviceID))
}

func (LogHooks) OnDevicePaired(ctx context.Context, deviceID string) {
	logger.L().Info("device paired", zap.String("id", deviceID))
}

func (LogHooks) OnRefresh(ctx context.Context, kind domain.EntityKind) {
	logger.L().Debug("refresh", zap.String("kind", string(kind)))
}

func (LogHooks) OnDateChange(ctx context.Context, r domain.DateRange) {
	logger.L().Info("date range changed", zap.Time("from", r.From), zap.Time("to", r.To))
}

func (LogHooks) OnPresetChange(ctx context.Context, preset string) {
	logger.L().Info("date preset changed", zap.String("preset", preset))
}

func (LogHooks) OnSettingsSaved(ctx context.Context, section string, payload any) {
	logger.L().Info("settings saved", zap.String("section", section), zap.Any("payload", payload))
}

func (LogHooks) OnExportReport(ctx context.Context, r domain.DateRange) {
	logger.L().Info("export report", zap.Time("from", r.From), zap.Time("to", r.To))
}

// Call is one recorded callback.
type Call struct {
	Name    string
	Kind    domain.EntityKind
	ID      string
	Payload any
	At      time.Time
}

// Recorder keeps every callback it receives. Hosts use it in tests.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) add(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.At = time.Now()
	r.calls = append(r.calls, c)
}

func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Named returns the recorded calls with the given name, oldest first.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) OnSendMessage(ctx context.Context, msg domain.OutgoingMessage) {
	r.add(Call{Name: "OnSendMessage", Kind: domain.KindMessage, Payload: msg})
}

func (r *Recorder) OnResendMessage(ctx context.Context, messageID string) {
	r.add(Call{Name: "OnResendMessage", Kind: domain.KindMessage, ID: messageID})
}

func (r *Recorder) OnDeleteMessage(ctx context.Context, messageID string) {
	r.add(Call{Name: "OnDeleteMessage", Kind: domain.KindMessage, ID: messageID})
}

func (r *Recorder) OnCreate(ctx context.Context, kind domain.EntityKind, payload any) {
	r.add(Call{Name: "OnCreate", Kind: kind, Payload: payload})
}

func (r *Recorder) OnEdit(ctx context.Context, kind domain.EntityKind, id string, payload any) {
	r.add(Call{Name: "OnEdit", Kind: kind, ID: id, Payload: payload})
}

func (r *Recorder) OnDelete(ctx context.Context, kind domain.EntityKind, id string) {
	r.add(Call{Name: "OnDelete", Kind: kind, ID: id})
}

func (r *Recorder) OnDisconnect(ctx context.Context, deviceID string) {
	r.add(Call{Name: "OnDisconnect", Kind: domain.KindDevice, ID: deviceID})
}

func (r *Recorder) OnDevicePaired(ctx context.Context, deviceID string) {
	r.add(Call{Name: "OnDevicePaired", Kind: domain.KindDevice, ID: deviceID})
}

func (r *Recorder) OnRefresh(ctx context.Context, kind domain.EntityKind) {
	r.add(Call{Name: "OnRefresh", Kind: kind})
}

func (r *Recorder) OnDateChange(ctx context.Context, dr domain.DateRange) {
	r.add(Call{Name: "OnDateChange", Payload: dr})
}

func (r *Recorder) OnPresetChange(ctx context.Context, preset string) {
	r.add(Call{Name: "OnPresetChange", ID: preset})
}

func (r *Recorder) OnSettingsSaved(ctx context.Context, section string, payload any) {
	r.add(Call{Name: "OnSettingsSaved", ID: section, Payload: payload})
}

func (r *Recorder) OnExportReport(ctx context.Context, dr domain.DateRange) {
	r.add(Call{Name: "OnExportReport", Payload: dr})
}
