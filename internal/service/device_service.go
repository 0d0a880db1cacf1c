package service

import (
	"context"
	"fmt"
	"time"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/hooks"
	"github.com/onurcolak/gateway-dashboard/internal/listview"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

type deviceRepository interface {
	List(ctx context.Context) ([]domain.Device, error)
	GetByID(ctx context.Context, id string) (*domain.Device, error)
	Create(ctx context.Context, device domain.Device) (*domain.Device, error)
}

type DeviceService struct {
	repo  deviceRepository
	hooks hooks.Hooks
	now   func() time.Time
}

func NewDeviceService(repo deviceRepository, h hooks.Hooks) *DeviceService {
	return &DeviceService{repo: repo, hooks: h, now: time.Now}
}

func (s *DeviceService) List(ctx context.Context, q listview.Query) (listview.Result[domain.DeviceRow], error) {
	devices, err := s.repo.List(ctx)
	if err != nil {
		return listview.Result[domain.DeviceRow]{}, fmt.Errorf("failed to list devices: %w", err)
	}

	return listview.Map(listview.Apply(devices, listview.Devices, q), domain.NewDeviceRow), nil
}

func (s *DeviceService) Get(ctx context.Context, id string) (*domain.Device, error) {
	return s.repo.GetByID(ctx, id)
}

// Disconnect asks the host to drop the device, then refreshes the list.
func (s *DeviceService) Disconnect(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	s.hooks.OnDisconnect(ctx, id)
	s.hooks.OnRefresh(ctx, domain.KindDevice)
	return nil
}

func (s *DeviceService) Refresh(ctx context.Context) {
	s.hooks.OnRefresh(ctx, domain.KindDevice)
}

// Exists reports whether a device id is already in use.
func (s *DeviceService) Exists(ctx context.Context, id string) bool {
	_, err := s.repo.GetByID(ctx, id)
	return err == nil
}

// AddPaired records a device that just finished pairing.
func (s *DeviceService) AddPaired(ctx context.Context, deviceID string) (*domain.Device, error) {
	device, err := s.repo.Create(ctx, domain.Device{
		ID:             deviceID,
		Name:           "New Device",
		Status:         domain.DeviceStatusOnline,
		LastConnection: s.now().UTC(),
		BatteryLevel:   100,
		SignalStrength: 100,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add paired device: %w", err)
	}

	logger.Infof("Device %s paired and online", deviceID)

	s.hooks.OnDevicePaired(ctx, deviceID)
	s.hooks.OnRefresh(ctx, domain.KindDevice)

	return device, nil
}
