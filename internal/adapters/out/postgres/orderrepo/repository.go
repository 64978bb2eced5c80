package orderrepo

import (
	"context"
	"errors"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and feeds the generated id back into the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err = aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, preconditioned on the status and driver
// reference the caller read. A row that moved on in the meantime is reported
// as a conflict. The driver check matters even when the status matches: a
// claim on a ready order leaves the status at ready, and a status-only
// predicate would let a stale snapshot write the assignment back to NULL.
func (r *GormOrderRepository) Update(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
	expectedDriver *int64,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND driver_id IS NOT DISTINCT FROM ?",
			dto.ID, expectedStatus.String(), expectedDriver).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if notFoundErr := r.exists(ctx, dto.ID); notFoundErr != nil {
			return notFoundErr
		}
		return errs.NewConflictError("order state")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves all orders of one customer, newest first.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID int64) ([]*order.Order, error) {
	if customerID <= 0 {
		return nil, errs.NewValueIsInvalidError("customer id")
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllDispatchable retrieves unassigned orders awaiting a driver, oldest
// first, bounded by limit.
func (r *GormOrderRepository) GetAllDispatchable(ctx context.Context, limit int) ([]*order.Order, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("driver_id IS NULL AND status IN ?", dispatchableStatuses()).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// AssignDriver atomically claims an order for a driver. The update touches
// only a row that is still unassigned and in an acceptable status; the status
// advances in the same statement, with a ready order staying ready. Zero rows
// affected means another driver won the race.
func (r *GormOrderRepository) AssignDriver(ctx context.Context, orderID, driverID int64) (*order.Order, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if driverID <= 0 {
		return nil, errs.NewValueIsInvalidError("driver id")
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND driver_id IS NULL AND status IN ?", orderID, acceptableStatuses()).
		Updates(map[string]any{
			"driver_id": driverID,
			"status": gorm.Expr(
				"CASE WHEN status = ? THEN status ELSE ? END",
				order.Ready.String(), order.OutForDelivery.String(),
			),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		if notFoundErr := r.exists(ctx, orderID); notFoundErr != nil {
			return nil, notFoundErr
		}
		return nil, errs.NewConflictError("order already assigned")
	}

	aggregate, err := r.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// CountDispatchable returns the number of orders waiting on the dispatch feed.
func (r *GormOrderRepository) CountDispatchable(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("driver_id IS NULL AND status IN ?", dispatchableStatuses()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOrderRepository) exists(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// dispatchableStatuses is the feed listing set.
func dispatchableStatuses() []string {
	return []string{
		order.Confirmed.String(),
		order.Preparing.String(),
		order.Ready.String(),
	}
}

// acceptableStatuses is the wider set a claim may land on.
func acceptableStatuses() []string {
	return []string{
		order.Pending.String(),
		order.Confirmed.String(),
		order.Preparing.String(),
		order.Ready.String(),
	}
}
