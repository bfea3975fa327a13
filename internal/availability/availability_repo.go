package availability

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ray0128/sunday-for-rayinhair/internal/leave"
	"github.com/ray0128/sunday-for-rayinhair/internal/shared/dateutil"
)

// Repository gathers the read-only projections the calculator consumes.
// It reads across module tables on purpose; the availability view is a join
// over the whole store.
type Repository interface {
	StoreTimezone(ctx context.Context, storeID string) (string, error)
	ActiveStaff(ctx context.Context, storeID string) ([]StaffMember, error)
	ActiveLeaves(ctx context.Context, storeID string, from, to time.Time) ([]OffRecord, error)
	DemandOverrides(ctx context.Context, storeID string, from, to time.Time) ([]DemandOverrideRecord, error)
	RookieBookings(ctx context.Context, storeID string, from, to time.Time) ([]BookingRecord, error)
	ActiveBoundDesigners(ctx context.Context, storeID, assistantID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) StoreTimezone(ctx context.Context, storeID string) (string, error) {
	var tz string
	err := r.db.WithContext(ctx).
		Table("stores").
		Select("timezone").
		Where("id = ?", storeID).
		Where("active = TRUE").
		Where("deleted_at IS NULL").
		Limit(1).
		Scan(&tz).Error
	return tz, err
}

func (r *repository) ActiveStaff(ctx context.Context, storeID string) ([]StaffMember, error) {
	var staff []StaffMember
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id::text AS id, role, base_demand, base_supply").
		Where("store_id = ?", storeID).
		Where("active = TRUE").
		Where("deleted_at IS NULL").
		Scan(&staff).Error
	return staff, err
}

func (r *repository) ActiveLeaves(ctx context.Context, storeID string, from, to time.Time) ([]OffRecord, error) {
	type row struct {
		ID        string
		UserID    string
		Date      time.Time
		Status    string
		CreatedBy string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("id::text AS id, user_id::text AS user_id, date, status, created_by::text AS created_by").
		Where("store_id = ?", storeID).
		Where("date BETWEEN ? AND ?", from, to).
		Where("status IN ?", []string{leave.StatusPending, leave.StatusApproved}).
		Where("deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]OffRecord, len(rows))
	for i, r := range rows {
		records[i] = OffRecord{
			ID:        r.ID,
			UserID:    r.UserID,
			Date:      r.Date.Format(dateutil.DayLayout),
			Status:    r.Status,
			CreatedBy: r.CreatedBy,
		}
	}
	return records, nil
}

func (r *repository) DemandOverrides(ctx context.Context, storeID string, from, to time.Time) ([]DemandOverrideRecord, error) {
	type row struct {
		DesignerID string
		Date       time.Time
		Demand     float64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("designer_demand_overrides").
		Select("designer_id::text AS designer_id, date, demand").
		Where("store_id = ?", storeID).
		Where("date BETWEEN ? AND ?", from, to).
		Where("deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]DemandOverrideRecord, len(rows))
	for i, r := range rows {
		records[i] = DemandOverrideRecord{
			DesignerID: r.DesignerID,
			Date:       r.Date.Format(dateutil.DayLayout),
			Demand:     r.Demand,
		}
	}
	return records, nil
}

func (r *repository) RookieBookings(ctx context.Context, storeID string, from, to time.Time) ([]BookingRecord, error) {
	type row struct {
		RookieID string
		Date     time.Time
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("rookie_bookings").
		Select("rookie_id::text AS rookie_id, date").
		Where("store_id = ?", storeID).
		Where("date BETWEEN ? AND ?", from, to).
		Where("deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]BookingRecord, len(rows))
	for i, r := range rows {
		records[i] = BookingRecord{
			RookieID: r.RookieID,
			Date:     r.Date.Format(dateutil.DayLayout),
		}
	}
	return records, nil
}

func (r *repository) ActiveBoundDesigners(ctx context.Context, storeID, assistantID string) ([]string, error) {
	var designers []string
	err := r.db.WithContext(ctx).
		Table("bindings").
		Select("designer_id::text").
		Where("store_id = ?", storeID).
		Where("assistant_id = ?", assistantID).
		Where("active = TRUE").
		Where("deleted_at IS NULL").
		Scan(&designers).Error
	return designers, err
}
