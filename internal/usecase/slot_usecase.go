package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase/interfaces"
)

var (
	ErrSlotFull        = errors.New("slot full")
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrNoSlotAvailable = errors.New("no slot available within the look-ahead window")
	ErrInvalidSlot     = errors.New("invalid slot")
)

const (
	slotDateFormat   = "2006-01-02"
	slotBucketFormat = "15:04"
	slotBucketStep   = 15 * time.Minute
)

// ISlotUseCase is the slot ledger surface exposed to the HTTP layer.

type ISlotUseCase interface {
	Reserve(ctx context.Context, date, timeBucket string) (entities.TimeSlot, error)
	Release(ctx context.Context, key string) error
	FindNextAvailable(ctx context.Context, from time.Time) (entities.TimeSlot, error)
	ListByDate(ctx context.Context, date string) ([]entities.TimeSlot, error)
}

// SlotUseCase is the time-slot ledger: bounded-capacity (date, bucket)
// counters with atomic reserve/release and a bounded chronological search.
//
// Slots are provisioned lazily on first reservation with the per-type default
// capacity; an unprovisioned bucket therefore counts as fully open.
type SlotUseCase struct {
	repo interfaces.ISlotRepository
	cfg  CapacityConfig
}

var _ ISlotUseCase = (*SlotUseCase)(nil)

func NewSlotUseCase(repo interfaces.ISlotRepository, cfg CapacityConfig) *SlotUseCase {
	return &SlotUseCase{repo: repo, cfg: cfg}
}

// Reserve atomically takes one unit of capacity in the requested slot.
// The compare-and-increment happens at the store, so two concurrent calls for
// the last unit serialize: one wins, the other sees the full slot.
func (u *SlotUseCase) Reserve(ctx context.Context, date, timeBucket string) (entities.TimeSlot, error) {
	if err := u.validateSlotRef(date, timeBucket); err != nil {
		return entities.TimeSlot{}, err
	}
	key := entities.MakeSlotKey(date, timeBucket)

	slot, err := u.repo.TryReserve(ctx, key)
	if err != nil {
		return entities.TimeSlot{}, err
	}
	if slot.Date != "" {
		return slot, nil
	}

	// Condition failed: either the slot does not exist yet, is disabled, or
	// is full.
	existing, err := u.repo.Get(ctx, key)
	if err != nil {
		return entities.TimeSlot{}, err
	}
	if existing.Date == "" {
		if _, err := u.repo.Provision(ctx, u.defaultSlot(date, timeBucket)); err != nil {
			return entities.TimeSlot{}, err
		}
		slot, err = u.repo.TryReserve(ctx, key)
		if err != nil {
			return entities.TimeSlot{}, err
		}
		if slot.Date != "" {
			return slot, nil
		}
		existing, err = u.repo.Get(ctx, key)
		if err != nil {
			return entities.TimeSlot{}, err
		}
	}

	if existing.Date != "" && !existing.IsAvailable {
		return entities.TimeSlot{}, ErrSlotUnavailable
	}
	return entities.TimeSlot{}, ErrSlotFull
}

// Release gives one unit of capacity back. The store floors the counter at
// zero, so a duplicate release cannot corrupt it.
func (u *SlotUseCase) Release(ctx context.Context, key string) error {
	_, err := u.repo.Release(ctx, key)
	return err
}

// FindNextAvailable scans buckets chronologically from the given point and
// returns the first open slot, bounded by the configured look-ahead window.
func (u *SlotUseCase) FindNextAvailable(ctx context.Context, from time.Time) (entities.TimeSlot, error) {
	from = from.UTC().Truncate(time.Minute)

	for day := 0; day <= u.cfg.LookaheadDays; day++ {
		date := from.AddDate(0, 0, day).Format(slotDateFormat)

		listed, err := u.repo.ListByDate(ctx, date)
		if err != nil {
			return entities.TimeSlot{}, err
		}
		byBucket := make(map[string]entities.TimeSlot, len(listed))
		for _, s := range listed {
			byBucket[s.TimeBucket] = s
		}

		for _, bucket := range u.operatingBuckets() {
			if day == 0 {
				at, _ := time.Parse(slotDateFormat+" "+slotBucketFormat, date+" "+bucket)
				if at.Before(from) {
					continue
				}
			}
			s, ok := byBucket[bucket]
			if !ok {
				return u.defaultSlot(date, bucket), nil
			}
			if s.IsAvailable && !s.IsFull() {
				return s, nil
			}
		}
	}

	return entities.TimeSlot{}, ErrNoSlotAvailable
}

// ListByDate returns the full operating-day grid for a date, overlaying the
// provisioned slots on the per-type defaults.
func (u *SlotUseCase) ListByDate(ctx context.Context, date string) ([]entities.TimeSlot, error) {
	if _, err := time.Parse(slotDateFormat, date); err != nil {
		return nil, ErrInvalidSlot
	}

	listed, err := u.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	byBucket := make(map[string]entities.TimeSlot, len(listed))
	for _, s := range listed {
		byBucket[s.TimeBucket] = s
	}

	buckets := u.operatingBuckets()
	out := make([]entities.TimeSlot, 0, len(buckets))
	for _, bucket := range buckets {
		if s, ok := byBucket[bucket]; ok {
			out = append(out, s)
			continue
		}
		out = append(out, u.defaultSlot(date, bucket))
	}
	return out, nil
}

func (u *SlotUseCase) validateSlotRef(date, timeBucket string) error {
	if _, err := time.Parse(slotDateFormat, date); err != nil {
		return ErrInvalidSlot
	}
	at, err := time.Parse(slotBucketFormat, timeBucket)
	if err != nil || at.Minute()%15 != 0 {
		return ErrInvalidSlot
	}
	if at.Hour() < u.cfg.OpenHour || at.Hour() >= u.cfg.CloseHour {
		return ErrInvalidSlot
	}
	return nil
}

// operatingBuckets enumerates the schedulable buckets of a day in order.
func (u *SlotUseCase) operatingBuckets() []string {
	var out []string
	for h := u.cfg.OpenHour; h < u.cfg.CloseHour; h++ {
		for m := 0; m < 60; m += int(slotBucketStep.Minutes()) {
			out = append(out, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return out
}

func (u *SlotUseCase) defaultSlot(date, timeBucket string) entities.TimeSlot {
	t := slotTypeFor(timeBucket)
	return entities.TimeSlot{
		Date:          date,
		TimeBucket:    timeBucket,
		SlotType:      t,
		MaxOrders:     u.cfg.DefaultMaxOrders(t),
		CurrentOrders: 0,
		IsAvailable:   true,
	}
}

// slotTypeFor classifies a bucket: lunch and dinner rush are peak, the edges
// of the day are off-peak.
func slotTypeFor(timeBucket string) entities.SlotType {
	at, err := time.Parse(slotBucketFormat, timeBucket)
	if err != nil {
		return entities.SlotTypeRegular
	}
	h := at.Hour()
	switch {
	case (h >= 12 && h < 14) || (h >= 18 && h < 21):
		return entities.SlotTypePeak
	case h < 12 || h >= 21:
		return entities.SlotTypeOffPeak
	default:
		return entities.SlotTypeRegular
	}
}
