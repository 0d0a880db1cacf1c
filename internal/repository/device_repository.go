package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

type DeviceRepository struct {
	mu      sync.RWMutex
	devices []domain.Device
}

func NewDeviceRepository(devices []domain.Device) *DeviceRepository {
	return &DeviceRepository{devices: slices.Clone(devices)}
}

func (r *DeviceRepository) List(ctx context.Context) ([]domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.devices), nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, id string) (*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := slices.IndexFunc(r.devices, func(d domain.Device) bool { return d.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("device %s: %w", id, domain.ErrNotFound)
	}

	found := r.devices[idx]
	return &found, nil
}

func (r *DeviceRepository) Create(ctx context.Context, device domain.Device) (*domain.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.devices, func(d domain.Device) bool { return d.ID == device.ID }) {
		return nil, fmt.Errorf("device %s already exists", device.ID)
	}

	r.devices = append(r.devices, device)
	return &device, nil
}
