package presencerepo

import (
	"context"
	"errors"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/driver"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPresenceRepository implements ports.PresenceRepository using GORM.
type GormPresenceRepository struct {
	db *gorm.DB
}

// NewGormPresenceRepository creates a new GORM presence repository.
func NewGormPresenceRepository(db *gorm.DB) *GormPresenceRepository {
	return &GormPresenceRepository{db: db}
}

// Upsert inserts or replaces the presence row for the reporting driver.
// Last write wins, including a nil location overwriting a known one.
func (r *GormPresenceRepository) Upsert(ctx context.Context, presence driver.Presence) error {
	if err := presence.Validate(); err != nil {
		return err
	}

	dto := fromDomain(presence)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "driver_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"available", "lat", "lng", "updated_at"}),
	}).Create(&dto).Error
}

// Get retrieves the presence row for one driver.
func (r *GormPresenceRepository) Get(ctx context.Context, driverID int64) (*driver.Presence, error) {
	if driverID <= 0 {
		return nil, errs.NewValueIsInvalidError("driver id")
	}

	var dto PresenceDTO
	if err := r.db.WithContext(ctx).First(&dto, "driver_id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver presence", driverID)
		}
		return nil, err
	}

	presence, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	return &presence, nil
}

// GetAllAvailable retrieves every driver currently flagged available.
func (r *GormPresenceRepository) GetAllAvailable(ctx context.Context) ([]driver.Presence, error) {
	var dtos []PresenceDTO
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("updated_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	presences := make([]driver.Presence, 0, len(dtos))
	for _, dto := range dtos {
		presence, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		presences = append(presences, presence)
	}

	return presences, nil
}
