package usecase

import (
	"context"
	"errors"
	"time"

	"bistro_core/internal/domain/entities"
)

// KitchenStatus is the read-only view polled by the ordering frontend for
// live wait-time display.
type KitchenStatus struct {
	Load              entities.KitchenLoad
	NextAvailableSlot *entities.TimeSlot
}

type IKitchenStatusUseCase interface {
	Status(ctx context.Context) (KitchenStatus, error)
}

// KitchenStatusUseCase combines the live snapshot with the derived
// next-available slot. It performs no writes.
type KitchenStatusUseCase struct {
	monitor *KitchenLoadMonitor
	slots   *SlotUseCase

	clock func() time.Time
}

var _ IKitchenStatusUseCase = (*KitchenStatusUseCase)(nil)

func NewKitchenStatusUseCase(monitor *KitchenLoadMonitor, slots *SlotUseCase) *KitchenStatusUseCase {
	return &KitchenStatusUseCase{
		monitor: monitor,
		slots:   slots,
		clock:   func() time.Time { return time.Now().UTC() },
	}
}

func (u *KitchenStatusUseCase) Status(ctx context.Context) (KitchenStatus, error) {
	status := KitchenStatus{Load: u.monitor.Snapshot()}

	next, err := u.slots.FindNextAvailable(ctx, u.clock())
	switch {
	case err == nil:
		status.NextAvailableSlot = &next
	case errors.Is(err, ErrNoSlotAvailable):
		// Window exhausted: the field simply stays empty.
	default:
		return KitchenStatus{}, err
	}
	return status, nil
}
