package availability_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/ray0128/sunday-for-rayinhair/internal/availability"
	availabilityerrors "github.com/ray0128/sunday-for-rayinhair/internal/availability/errors"
	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
	"github.com/ray0128/sunday-for-rayinhair/internal/storeconfig"
)

type fakeAvailabilityRepository struct {
	storeTimezoneFn        func(ctx context.Context, storeID string) (string, error)
	activeStaffFn          func(ctx context.Context, storeID string) ([]availability.StaffMember, error)
	activeLeavesFn         func(ctx context.Context, storeID string, from, to time.Time) ([]availability.OffRecord, error)
	demandOverridesFn      func(ctx context.Context, storeID string, from, to time.Time) ([]availability.DemandOverrideRecord, error)
	rookieBookingsFn       func(ctx context.Context, storeID string, from, to time.Time) ([]availability.BookingRecord, error)
	activeBoundDesignersFn func(ctx context.Context, storeID, assistantID string) ([]string, error)
}

func (f *fakeAvailabilityRepository) StoreTimezone(ctx context.Context, storeID string) (string, error) {
	if f.storeTimezoneFn != nil {
		return f.storeTimezoneFn(ctx, storeID)
	}
	return "Asia/Taipei", nil
}

func (f *fakeAvailabilityRepository) ActiveStaff(ctx context.Context, storeID string) ([]availability.StaffMember, error) {
	if f.activeStaffFn != nil {
		return f.activeStaffFn(ctx, storeID)
	}
	return nil, nil
}

func (f *fakeAvailabilityRepository) ActiveLeaves(ctx context.Context, storeID string, from, to time.Time) ([]availability.OffRecord, error) {
	if f.activeLeavesFn != nil {
		return f.activeLeavesFn(ctx, storeID, from, to)
	}
	return nil, nil
}

func (f *fakeAvailabilityRepository) DemandOverrides(ctx context.Context, storeID string, from, to time.Time) ([]availability.DemandOverrideRecord, error) {
	if f.demandOverridesFn != nil {
		return f.demandOverridesFn(ctx, storeID, from, to)
	}
	return nil, nil
}

func (f *fakeAvailabilityRepository) RookieBookings(ctx context.Context, storeID string, from, to time.Time) ([]availability.BookingRecord, error) {
	if f.rookieBookingsFn != nil {
		return f.rookieBookingsFn(ctx, storeID, from, to)
	}
	return nil, nil
}

func (f *fakeAvailabilityRepository) ActiveBoundDesigners(ctx context.Context, storeID, assistantID string) ([]string, error) {
	if f.activeBoundDesignersFn != nil {
		return f.activeBoundDesignersFn(ctx, storeID, assistantID)
	}
	return nil, nil
}

type fakeConfigService struct {
	snapshot storeconfig.Snapshot
}

func (f *fakeConfigService) GetSnapshot(ctx context.Context, storeID string) (storeconfig.SnapshotResponse, error) {
	return storeconfig.SnapshotResponse{}, nil
}

func (f *fakeConfigService) ListCurrent(ctx context.Context, storeID string) ([]storeconfig.ConfigEntryResponse, error) {
	return nil, nil
}

func (f *fakeConfigService) Upsert(ctx context.Context, storeID string, req storeconfig.UpsertConfigRequest) (storeconfig.ConfigEntryResponse, error) {
	return storeconfig.ConfigEntryResponse{}, nil
}

func (f *fakeConfigService) LoadSnapshot(ctx context.Context, storeID string) (storeconfig.Snapshot, error) {
	return f.snapshot, nil
}

func TestAvailabilityService_ComputeMonth(t *testing.T) {
	ctx := context.Background()
	storeID := "8fb9f7ac-8a25-4b0a-9f0a-b4b21de5b6be"
	requester := availability.Requester{ID: "user-1", Role: domain.RoleDesigner}

	t.Run("computes full month without redis", func(t *testing.T) {
		repo := &fakeAvailabilityRepository{
			activeStaffFn: func(ctx context.Context, sid string) ([]availability.StaffMember, error) {
				assert.Equal(t, storeID, sid)
				return []availability.StaffMember{
					{ID: "designer-1", Role: domain.RoleDesigner},
					{ID: "assistant-1", Role: domain.RoleAssistant},
				}, nil
			},
		}
		svc := availability.NewService(repo, &fakeConfigService{snapshot: storeconfig.DefaultSnapshot()}, nil)

		out, err := svc.ComputeMonth(ctx, storeID, requester, "2026-09")

		assert.NoError(t, err)
		assert.Equal(t, "2026-09", out.Month)
		assert.Len(t, out.Days, 30)
		assert.Equal(t, "2026-09-01", out.Days[0].Date)
		assert.Equal(t, "2026-09-30", out.Days[29].Date)
	})

	t.Run("cache hit skips loading", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		cached := availability.MonthAvailability{
			Month: "2026-09",
			Days:  []availability.DayAvailability{{Date: "2026-09-01", Selectable: true}},
		}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		cacheKey := "availability:" + storeID + ":2026-09:" + requester.Role + ":" + requester.ID
		redisMock.ExpectGet(cacheKey).SetVal(string(payload))

		repo := &fakeAvailabilityRepository{
			activeStaffFn: func(ctx context.Context, sid string) ([]availability.StaffMember, error) {
				t.Fatal("staff must not be loaded on cache hit")
				return nil, nil
			},
		}
		svc := availability.NewService(repo, &fakeConfigService{snapshot: storeconfig.DefaultSnapshot()}, rdb)

		out, err := svc.ComputeMonth(ctx, storeID, requester, "2026-09")

		assert.NoError(t, err)
		assert.Equal(t, cached, out)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("bindings loaded only for gated assistants", func(t *testing.T) {
		snap := storeconfig.DefaultSnapshot()
		snap.AssistantBlockIfMasterWorking = true

		var asked bool
		repo := &fakeAvailabilityRepository{
			activeBoundDesignersFn: func(ctx context.Context, sid, aid string) ([]string, error) {
				asked = true
				assert.Equal(t, "assistant-9", aid)
				return []string{"designer-1"}, nil
			},
		}
		svc := availability.NewService(repo, &fakeConfigService{snapshot: snap}, nil)

		_, err := svc.ComputeMonth(ctx, storeID, availability.Requester{ID: "assistant-9", Role: domain.RoleAssistant}, "2026-09")
		assert.NoError(t, err)
		assert.True(t, asked)

		asked = false
		_, err = svc.ComputeMonth(ctx, storeID, requester, "2026-09")
		assert.NoError(t, err)
		assert.False(t, asked, "designers have no master-working gate")
	})

	t.Run("negative invalid month", func(t *testing.T) {
		svc := availability.NewService(&fakeAvailabilityRepository{}, &fakeConfigService{}, nil)

		_, err := svc.ComputeMonth(ctx, storeID, requester, "September 2026")

		assert.ErrorIs(t, err, availabilityerrors.ErrInvalidMonthFormat)
	})

	t.Run("negative unknown store", func(t *testing.T) {
		repo := &fakeAvailabilityRepository{
			storeTimezoneFn: func(ctx context.Context, sid string) (string, error) {
				return "", nil
			},
		}
		svc := availability.NewService(repo, &fakeConfigService{}, nil)

		_, err := svc.ComputeMonth(ctx, storeID, requester, "2026-09")

		assert.ErrorIs(t, err, availabilityerrors.ErrStoreNotFound)
	})
}
