package override

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ray0128/sunday-for-rayinhair/internal/tenant"
)

type Repository interface {
	Upsert(ctx context.Context, o *DemandOverride) error
	FindByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]DemandOverride, error)
	Delete(ctx context.Context, storeID, id string) error
	ActiveStaffRole(ctx context.Context, storeID, userID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, o *DemandOverride) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "designer_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"demand", "updated_at"}),
		}).
		Create(o).Error
}

func (r *repository) FindByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]DemandOverride, error) {
	var overrides []DemandOverride
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC").
		Find(&overrides).Error
	return overrides, err
}

func (r *repository) Delete(ctx context.Context, storeID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Delete(&DemandOverride{}, "id = ?", id).Error
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
