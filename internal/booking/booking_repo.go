package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ray0128/sunday-for-rayinhair/internal/tenant"
)

type Repository interface {
	Create(ctx context.Context, b *RookieBooking) error
	FindByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]RookieBooking, error)
	FindByIDAndStore(ctx context.Context, storeID, id string) (*RookieBooking, error)
	Delete(ctx context.Context, storeID, id string) error
	ActiveStaffRole(ctx context.Context, storeID, userID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *RookieBooking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]RookieBooking, error) {
	var bookings []RookieBooking
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC, start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) FindByIDAndStore(ctx context.Context, storeID, id string) (*RookieBooking, error) {
	var b RookieBooking
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) Delete(ctx context.Context, storeID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Delete(&RookieBooking{}, "id = ?", id).Error
}

func (r *repository) ActiveStaffRole(ctx context.Context, storeID, userID string) (string, error) {
	var role string
	err := r.db.WithContext(ctx).
		Table("users").
		Select("role").
		Where("id = ?", userID).
		Where("store_id = ?", storeID).
		Where("active = TRUE").
		Where("deleted_at IS NULL").
		Limit(1).
		Scan(&role).Error
	return role, err
}
