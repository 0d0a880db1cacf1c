package repository

import (
	"context"
	"sync"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

// SettingsRepository keeps the current settings and the defaults they can be
// reset to.
type SettingsRepository struct {
	mu sync.RWMutex

	system        domain.SystemParameters
	notifications domain.NotificationSettings

	defaultSystem        domain.SystemParameters
	defaultNotifications domain.NotificationSettings
}

func NewSettingsRepository(system domain.SystemParameters, notifications domain.NotificationSettings) *SettingsRepository {
	return &SettingsRepository{
		system:               system,
		notifications:        notifications,
		defaultSystem:        system,
		defaultNotifications: notifications,
	}
}

func (r *SettingsRepository) System(ctx context.Context) domain.SystemParameters {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.system
}

func (r *SettingsRepository) SaveSystem(ctx context.Context, params domain.SystemParameters) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.system = params
}

func (r *SettingsRepository) Notifications(ctx context.Context) domain.NotificationSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.notifications
}

func (r *SettingsRepository) SaveNotifications(ctx context.Context, settings domain.NotificationSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = settings
}

func (r *SettingsRepository) Reset(ctx context.Context) (domain.SystemParameters, domain.NotificationSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.system = r.defaultSystem
	r.notifications = r.defaultNotifications
	return r.system, r.notifications
}
