package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrder      = errors.New("invalid order")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrOrderNotFound     = errors.New("order not found")
	ErrKitchenOverloaded = errors.New("kitchen overloaded")
)

// AdmitCommand is the tagged admission request. ScheduledDate/ScheduledTime
// are meaningful only for scheduled orders and required for them.
type AdmitCommand struct {
	Items         []entities.OrderItem
	TotalAmount   float64
	Type          entities.OrderType
	Priority      entities.Priority
	ScheduledDate string
	ScheduledTime string
}

// AdmissionResult carries the admitted order, or the fallback the caller can
// act on when admission was declined. OfferedSlot is never reserved here; the
// customer must explicitly accept it with a scheduled order.
type AdmissionResult struct {
	Order         entities.Order
	OfferedSlot   *entities.TimeSlot
	SuggestedSlot *entities.TimeSlot
}

// IAdmissionUseCase is the admission entry point exposed to the HTTP layer.

type IAdmissionUseCase interface {
	Admit(ctx context.Context, cmd AdmitCommand) (AdmissionResult, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
}

// AdmissionUseCase composes the load snapshot, the slot ledger and the order
// store into one all-or-nothing decision. Every failure branch returns before
// any mutation; the slot reservation is the only mutating step that can fail,
// and it is rolled back if the order write after it does not land.
type AdmissionUseCase struct {
	orders    interfaces.IOrderRepository
	slots     *SlotUseCase
	monitor   *KitchenLoadMonitor
	publisher interfaces.IStatusPublisher
	cfg       CapacityConfig

	clock func() time.Time
}

var _ IAdmissionUseCase = (*AdmissionUseCase)(nil)

func NewAdmissionUseCase(
	orders interfaces.IOrderRepository,
	slots *SlotUseCase,
	monitor *KitchenLoadMonitor,
	publisher interfaces.IStatusPublisher,
	cfg CapacityConfig,
) *AdmissionUseCase {
	return &AdmissionUseCase{
		orders:    orders,
		slots:     slots,
		monitor:   monitor,
		publisher: publisher,
		cfg:       cfg,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *AdmissionUseCase) Admit(ctx context.Context, cmd AdmitCommand) (AdmissionResult, error) {
	priority, err := validateAdmitCommand(cmd)
	if err != nil {
		return AdmissionResult{}, err
	}

	snap := u.monitor.Snapshot()
	score := ComplexityScore(cmd.Items)
	prep := EstimatePrepMinutes(score, snap.CurrentLoadPercent, u.cfg)

	switch cmd.Type {
	case entities.OrderTypeImmediate:
		return u.admitImmediate(ctx, cmd, priority, snap, score, prep)
	case entities.OrderTypeScheduled:
		return u.admitScheduled(ctx, cmd, priority, score, prep)
	default:
		return AdmissionResult{}, ErrInvalidOrder
	}
}

func (u *AdmissionUseCase) admitImmediate(
	ctx context.Context,
	cmd AdmitCommand,
	priority entities.Priority,
	snap entities.KitchenLoad,
	score, prep int,
) (AdmissionResult, error) {
	// Urgent orders are operator-escalated and skip the overload fallback,
	// accepting a degraded estimate.
	if snap.IsOverloaded && priority != entities.PriorityUrgent {
		res := AdmissionResult{}
		next, err := u.slots.FindNextAvailable(ctx, u.clock())
		switch {
		case err == nil:
			res.OfferedSlot = &next
		case !errors.Is(err, ErrNoSlotAvailable):
			log.Printf("[admission][usecase] next-slot lookup failed err=%v", err)
		}
		return res, ErrKitchenOverloaded
	}

	created, err := u.orders.Create(ctx, u.buildOrder(cmd, priority, score, prep, ""))
	if err != nil {
		return AdmissionResult{}, err
	}

	u.monitor.RecordAdmission()
	u.publishAdmitted(ctx, created, prep)
	log.Printf("[admission][usecase] immediate order admitted order_id=%s score=%d prep_min=%d", created.ID, score, prep)
	return AdmissionResult{Order: created}, nil
}

func (u *AdmissionUseCase) admitScheduled(
	ctx context.Context,
	cmd AdmitCommand,
	priority entities.Priority,
	score, prep int,
) (AdmissionResult, error) {
	if cmd.ScheduledDate == "" || cmd.ScheduledTime == "" {
		return AdmissionResult{}, ErrInvalidOrder
	}
	at, err := time.Parse(slotDateFormat+" "+slotBucketFormat, cmd.ScheduledDate+" "+cmd.ScheduledTime)
	if err != nil || !at.After(u.clock()) {
		return AdmissionResult{}, ErrInvalidOrder
	}

	slot, err := u.slots.Reserve(ctx, cmd.ScheduledDate, cmd.ScheduledTime)
	if errors.Is(err, ErrSlotFull) || errors.Is(err, ErrSlotUnavailable) {
		// Never a bare rejection when a fallback exists: suggest the next open
		// slot, but do not reserve it on the caller's behalf.
		res := AdmissionResult{}
		alt, ferr := u.slots.FindNextAvailable(ctx, at)
		switch {
		case ferr == nil:
			res.SuggestedSlot = &alt
		case !errors.Is(ferr, ErrNoSlotAvailable):
			log.Printf("[admission][usecase] alternative-slot lookup failed err=%v", ferr)
		}
		return res, err
	}
	if err != nil {
		return AdmissionResult{}, err
	}

	created, err := u.orders.Create(ctx, u.buildOrder(cmd, priority, score, prep, slot.Key()))
	if err != nil {
		// Roll the reservation back so a failed admission leaves no state.
		if rerr := u.slots.Release(ctx, slot.Key()); rerr != nil {
			log.Printf("[admission][usecase] reservation rollback failed slot_key=%s err=%v", slot.Key(), rerr)
		}
		return AdmissionResult{}, err
	}

	u.monitor.RecordAdmission()
	u.publishAdmitted(ctx, created, prep)
	log.Printf("[admission][usecase] scheduled order admitted order_id=%s slot_key=%s", created.ID, created.SlotKey)
	return AdmissionResult{Order: created}, nil
}

func (u *AdmissionUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *AdmissionUseCase) buildOrder(cmd AdmitCommand, priority entities.Priority, score, prep int, slotKey string) entities.Order {
	now := u.clock()
	o := entities.Order{
		ID:                   uuid.NewString(),
		Items:                cmd.Items,
		TotalAmount:          cmd.TotalAmount,
		Type:                 cmd.Type,
		Priority:             priority,
		ComplexityScore:      score,
		EstimatedPrepMinutes: prep,
		Status:               entities.OrderStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if slotKey != "" {
		o.SlotKey = slotKey
		o.ScheduledDate = cmd.ScheduledDate
		o.ScheduledTime = cmd.ScheduledTime
	}
	return o
}

func (u *AdmissionUseCase) publishAdmitted(ctx context.Context, o entities.Order, prep int) {
	if u.publisher == nil {
		return
	}
	ready := u.clock().Add(time.Duration(prep) * time.Minute)
	evt := entities.OrderStatusEvent{
		OrderID:          o.ID,
		NewStatus:        string(o.Status),
		ChangedAt:        u.clock(),
		EstimatedReadyAt: &ready,
		SlotKey:          o.SlotKey,
	}
	if err := u.publisher.PublishStatusChange(ctx, evt); err != nil {
		log.Printf("[admission][usecase] status publish failed order_id=%s err=%v", o.ID, err)
	}
}

// validateAdmitCommand rejects malformed requests before any state is
// touched. It returns the normalized priority.
func validateAdmitCommand(cmd AdmitCommand) (entities.Priority, error) {
	if len(cmd.Items) == 0 {
		return "", ErrInvalidOrder
	}
	computed := 0.0
	for _, it := range cmd.Items {
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return "", ErrInvalidOrder
		}
		computed += it.UnitPrice * float64(it.Quantity)
	}
	if math.Abs(computed-cmd.TotalAmount) > 0.005 {
		return "", ErrInvalidOrder
	}

	switch cmd.Priority {
	case "":
		return entities.PriorityNormal, nil
	case entities.PriorityNormal, entities.PriorityHigh, entities.PriorityUrgent:
		return cmd.Priority, nil
	default:
		return "", ErrInvalidOrder
	}
}
