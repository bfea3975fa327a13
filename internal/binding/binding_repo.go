package binding

import (
	"context"

	"gorm.io/gorm"

	"github.com/ray0128/sunday-for-rayinhair/internal/tenant"
)

type Repository interface {
	Create(ctx context.Context, b *Binding) error
	FindAllByStore(ctx context.Context, storeID string) ([]Binding, error)
	FindActiveByAssistant(ctx context.Context, storeID, assistantID string) ([]Binding, error)
	FindActiveByDesigner(ctx context.Context, storeID, designerID string) ([]Binding, error)
	FindByIDAndStore(ctx context.Context, storeID, id string) (*Binding, error)
	Update(ctx context.Context, b *Binding) error
	HasActivePair(ctx context.Context, storeID, assistantID, designerID string) (bool, error)
	ActiveStaffRole(ctx context.Context, storeID, userID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Binding) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAllByStore(ctx context.Context, storeID string) ([]Binding, error) {
	var bindings []Binding
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Order("created_at ASC").
		Find(&bindings).Error
	return bindings, err
}

func (r *repository) FindActiveByAssistant(ctx context.Context, storeID, assistantID string) ([]Binding, error) {
	var bindings []Binding
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Where("assistant_id = ?", assistantID).
		Where("active = TRUE").
		Find(&bindings).Error
	return bindings, err
}

func (r *repository) FindActiveByDesigner(ctx context.Context, storeID, designerID string) ([]Binding, error) {
	var bindings []Binding
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Where("designer_id = ?", designerID).
		Where("active = TRUE").
		Find(&bindings).Error
	return bindings, err
}

func (r *repository) FindByIDAndStore(ctx context.Context, storeID, id string) (*Binding, error) {
	var b Binding
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) Update(ctx context.Context, b *Binding) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) HasActivePair(ctx context.Context, storeID, assistantID, designerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Binding{}).
		Scopes(tenant.Scope(storeID)).
		Where("assistant_id = ?", assistantID).
		Where("designer_id = ?", designerID).
		Where("active = TRUE").
		Count(&count).Error
	return count > 0, err
}

// ActiveStaffRole returns the role of an active staff member, or "" when no
// such member exists in this store.
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
