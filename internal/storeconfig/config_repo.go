package storeconfig

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ray0128/sunday-for-rayinhair/internal/tenant"
)

type Repository interface {
	LoadCurrent(ctx context.Context, storeID string) ([]ConfigEntry, error)
	Upsert(ctx context.Context, e *ConfigEntry) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// LoadCurrent returns only rows without an effective date; dated rows are
// future values and never feed the calculator.
func (r *repository) LoadCurrent(ctx context.Context, storeID string) ([]ConfigEntry, error) {
	var entries []ConfigEntry
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Where("effective_from IS NULL").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Upsert(ctx context.Context, e *ConfigEntry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "store_id"}, {Name: "key"}, {Name: "effective_from"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(e).Error
}
