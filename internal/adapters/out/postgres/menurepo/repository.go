// Package menurepo backs the catalog port with the menu_items table.
package menurepo

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/ports"

	"gorm.io/gorm"
)

// MenuItemDTO represents one menu entry.
type MenuItemDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:255;not null"`
	Price  int64  `gorm:"not null"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName specifies the database table name for menu entries.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// GormMenuRepository implements ports.Catalog using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// GetItems retrieves catalog entries by id. Unknown ids are simply absent
// from the result; the caller decides whether that is an error.
func (r *GormMenuRepository) GetItems(ctx context.Context, ids []int64) (map[int64]ports.CatalogItem, error) {
	items := make(map[int64]ports.CatalogItem, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		items[dto.ID] = ports.CatalogItem{
			ID:     dto.ID,
			Name:   dto.Name,
			Price:  dto.Price,
			Active: dto.Active,
		}
	}

	return items, nil
}
