package staff

import (
	"context"

	"gorm.io/gorm"

	"github.com/ray0128/sunday-for-rayinhair/internal/tenant"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindAllByStore(ctx context.Context, storeID string) ([]User, error)
	FindActiveByStore(ctx context.Context, storeID string) ([]User, error)
	FindByIDAndStore(ctx context.Context, storeID, id string) (*User, error)
	Update(ctx context.Context, u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindAllByStore(ctx context.Context, storeID string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Order("role ASC, name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindActiveByStore(ctx context.Context, storeID string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Where("active = TRUE").
		Order("role ASC, name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindByIDAndStore(ctx context.Context, storeID, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
