package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/ray0128/sunday-for-rayinhair/internal/tenant"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByIDAndStore(ctx context.Context, storeID, id string) (*LeaveRequest, error)
	FindByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]LeaveRequest, error)
	HasActiveOnDate(ctx context.Context, storeID, userID string, date time.Time) (bool, error)
	FindPendingMirrors(ctx context.Context, storeID, parentID string) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, storeID string, ids []string, status string) error
	ActiveStaffRole(ctx context.Context, storeID, userID string) (string, error)
	ActiveBoundAssistants(ctx context.Context, storeID, designerID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	if r.tx != nil {
		query := `
        INSERT INTO leave_requests (
            id, store_id, user_id, date, status, source, mirror_of, created_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
		_, err := r.tx.ExecContext(
			ctx, query,
			l.ID, l.StoreID, l.UserID, l.Date, l.Status, l.Source, l.MirrorOf, l.CreatedBy,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByIDAndStore(ctx context.Context, storeID, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC, created_at ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) HasActiveOnDate(ctx context.Context, storeID, userID string, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(storeID)).
		Where("user_id = ?", userID).
		Where("date = ?", date).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindPendingMirrors(ctx context.Context, storeID, parentID string) ([]LeaveRequest, error) {
	var mirrors []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(storeID)).
		Where("mirror_of = ?", parentID).
		Where("status = ?", StatusPending).
		Find(&mirrors).Error
	return mirrors, err
}

func (r *repository) UpdateStatus(ctx context.Context, storeID string, ids []string, status string) error {
	if len(ids) == 0 {
		return nil
	}
	if r.tx != nil {
		query := `
        UPDATE leave_requests
        SET status = $1, updated_at = NOW()
        WHERE store_id = $2 AND id::text = ANY($3) AND deleted_at IS NULL
    `
		_, err := r.tx.ExecContext(ctx, query, status, storeID, ids)
		return err
	}
	return r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(storeID)).
		Where("id IN ?", ids).
		Update("status", status).Error
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

func (r *repository) ActiveBoundAssistants(ctx context.Context, storeID, designerID string) ([]string, error) {
	var assistants []string
	err := r.db.WithContext(ctx).
		Table("bindings").
		Select("assistant_id::text").
		Where("store_id = ?", storeID).
		Where("designer_id = ?", designerID).
		Where("active = TRUE").
		Where("deleted_at IS NULL").
		Scan(&assistants).Error
	return assistants, err
}
