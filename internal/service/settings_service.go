package service

import (
	"context"
	"errors"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/forms"
	"github.com/onurcolak/gateway-dashboard/internal/hooks"
	"github.com/onurcolak/gateway-dashboard/pkg/validator"
)

type settingsRepository interface {
	System(ctx context.Context) domain.SystemParameters
	SaveSystem(ctx context.Context, params domain.SystemParameters)
	Notifications(ctx context.Context) domain.NotificationSettings
	SaveNotifications(ctx context.Context, settings domain.NotificationSettings)
	Reset(ctx context.Context) (domain.SystemParameters, domain.NotificationSettings)
}

type SettingsService struct {
	repo  settingsRepository
	hooks hooks.Hooks
}

func NewSettingsService(repo settingsRepository, h hooks.Hooks) *SettingsService {
	return &SettingsService{repo: repo, hooks: h}
}

func (s *SettingsService) System(ctx context.Context) domain.SystemParameters {
	return s.repo.System(ctx)
}

func (s *SettingsService) SaveSystem(ctx context.Context, params domain.SystemParameters) domain.SystemParameters {
	s.repo.SaveSystem(ctx, params)
	s.hooks.OnSettingsSaved(ctx, "system", params)
	return params
}

func (s *SettingsService) Notifications(ctx context.Context) domain.NotificationSettings {
	return s.repo.Notifications(ctx)
}

func (s *SettingsService) SaveNotifications(ctx context.Context, settings domain.NotificationSettings) domain.NotificationSettings {
	s.repo.SaveNotifications(ctx, settings)
	s.hooks.OnSettingsSaved(ctx, "notifications", settings)
	return settings
}

// Fields returns the slider/text state of every numeric system parameter.
func (s *SettingsService) Fields(ctx context.Context) []domain.NumericField {
	params := s.repo.System(ctx)

	names := forms.SystemFieldNames()
	fields := make([]domain.NumericField, 0, len(names))
	for _, name := range names {
		n, err := forms.SystemField(params, name)
		if err != nil {
			continue
		}
		fields = append(fields, n.Field())
	}
	return fields
}

// UpdateField edits one numeric parameter from its slider or its text box.
// The value is kept right away; the save callback only runs on SaveSystem.
func (s *SettingsService) UpdateField(ctx context.Context, field string, source forms.Source, raw string, value float64) (domain.NumericField, error) {
	params, numeric, err := forms.ApplySystemField(s.repo.System(ctx), field, source, raw, value)
	if errors.Is(err, domain.ErrNotFound) {
		return numeric, err
	}
	if err != nil {
		return numeric, validator.FieldError(field, err.Error())
	}

	s.repo.SaveSystem(ctx, params)
	return numeric, nil
}

type Settings struct {
	System        domain.SystemParameters     `json:"system"`
	Notifications domain.NotificationSettings `json:"notifications"`
}

func (s *SettingsService) Reset(ctx context.Context) Settings {
	system, notifications := s.repo.Reset(ctx)
	out := Settings{System: system, Notifications: notifications}
	s.hooks.OnSettingsSaved(ctx, "reset", out)
	return out
}
