// Package userrepo backs the identity port with the users table.
//
// Guest checkout creates minimal accounts on the fly: the account takes its
// name from the local part of the email and a random placeholder credential
// that no one can log in with until a password reset.
package userrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents one customer account.
type UserDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for customer accounts.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements ports.Identity using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// ResolveCustomerByEmail returns the account id for an email, creating a
// guest account when none exists yet.
func (r *GormUserRepository) ResolveCustomerByEmail(ctx context.Context, email string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return 0, errs.NewValueIsInvalidError("email")
	}

	var existing UserDTO
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	guest := UserDTO{
		Name:         strings.SplitN(email, "@", 2)[0],
		Email:        email,
		PasswordHash: "guest:" + uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
	}
	if err = r.db.WithContext(ctx).Create(&guest).Error; err != nil {
		return 0, err
	}

	return guest.ID, nil
}
