package availability

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	availabilityerrors "github.com/ray0128/sunday-for-rayinhair/internal/availability/errors"
	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
	"github.com/ray0128/sunday-for-rayinhair/internal/shared/dateutil"
	"github.com/ray0128/sunday-for-rayinhair/internal/storeconfig"
)

const (
	cacheKeyPrefix = "availability:"
	cacheTTL       = 30 * time.Second
)

type Service interface {
	ComputeMonth(ctx context.Context, storeID string, requester Requester, month string) (MonthAvailability, error)
}

type service struct {
	repo    Repository
	configs storeconfig.Service
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger

	now func() time.Time
}

func NewService(repo Repository, configs storeconfig.Service, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("availability.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("availability.service")
	}
	return &service{
		repo:    repo,
		configs: configs,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
		now:     time.Now,
	}
}

func (s *service) ComputeMonth(ctx context.Context, storeID string, requester Requester, month string) (MonthAvailability, error) {
	from, to, err := dateutil.MonthRange(month)
	if err != nil {
		return MonthAvailability{}, availabilityerrors.ErrInvalidMonthFormat
	}

	// The verdict depends on who is asking, so the cache key carries the
	// requester. The TTL is short: today's day-of-month drives phase gating
	// and any leave mutation shifts the off sets.
	cacheKey := cacheKeyPrefix + storeID + ":" + month + ":" + requester.Role + ":" + requester.ID
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var out MonthAvailability
			if json.Unmarshal([]byte(cached), &out) == nil {
				return out, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		inputs, err := s.loadInputs(ctx, storeID, requester, month, from, to)
		if err != nil {
			return nil, err
		}

		out := ComputeMonth(inputs)

		if s.rdb != nil {
			if payload, err := json.Marshal(out); err == nil {
				s.rdb.Set(ctx, cacheKey, payload, cacheTTL)
			}
		}
		return out, nil
	})
	if err != nil {
		return MonthAvailability{}, err
	}

	return v.(MonthAvailability), nil
}

func (s *service) loadInputs(ctx context.Context, storeID string, requester Requester, month string, from, to time.Time) (Inputs, error) {
	tz, err := s.repo.StoreTimezone(ctx, storeID)
	if err != nil {
		s.logger.Error("load store timezone failed", zap.Error(err))
		return Inputs{}, err
	}
	if tz == "" {
		return Inputs{}, availabilityerrors.ErrStoreNotFound
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		s.logger.Warn("unknown store timezone, falling back to UTC", zap.String("timezone", tz))
		loc = time.UTC
	}

	snap, err := s.configs.LoadSnapshot(ctx, storeID)
	if err != nil {
		return Inputs{}, err
	}

	staff, err := s.repo.ActiveStaff(ctx, storeID)
	if err != nil {
		return Inputs{}, err
	}
	leaves, err := s.repo.ActiveLeaves(ctx, storeID, from, to)
	if err != nil {
		return Inputs{}, err
	}
	overrides, err := s.repo.DemandOverrides(ctx, storeID, from, to)
	if err != nil {
		return Inputs{}, err
	}
	bookings, err := s.repo.RookieBookings(ctx, storeID, from, to)
	if err != nil {
		return Inputs{}, err
	}

	var boundDesigners []string
	if requester.Role == domain.RoleAssistant && snap.AssistantBlockIfMasterWorking {
		boundDesigners, err = s.repo.ActiveBoundDesigners(ctx, storeID, requester.ID)
		if err != nil {
			return Inputs{}, err
		}
	}

	return Inputs{
		Month:          month,
		Today:          s.now().In(loc),
		Config:         snap,
		Requester:      requester,
		Staff:          staff,
		Leaves:         leaves,
		Overrides:      overrides,
		Bookings:       bookings,
		BoundDesigners: boundDesigners,
	}, nil
}
