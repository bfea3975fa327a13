package override

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
	overrideerrors "github.com/ray0128/sunday-for-rayinhair/internal/override/errors"
	"github.com/ray0128/sunday-for-rayinhair/internal/shared/dateutil"
)

type Service interface {
	Upsert(ctx context.Context, storeID string, req UpsertOverrideRequest) (OverrideResponse, error)
	GetByMonth(ctx context.Context, storeID, month string) ([]OverrideResponse, error)
	Delete(ctx context.Context, storeID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("override.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("override.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Upsert(ctx context.Context, storeID string, req UpsertOverrideRequest) (OverrideResponse, error) {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return OverrideResponse{}, overrideerrors.ErrInvalidStoreID
	}

	date, err := dateutil.ParseDay(req.Date)
	if err != nil {
		return OverrideResponse{}, overrideerrors.ErrInvalidDateFormat
	}

	role, err := s.repo.ActiveStaffRole(ctx, storeID, req.DesignerID)
	if err != nil {
		return OverrideResponse{}, err
	}
	if role != domain.RoleDesigner {
		return OverrideResponse{}, overrideerrors.ErrNotADesigner
	}

	o := &DemandOverride{
		ID:         uuid.New(),
		StoreID:    storeUUID,
		DesignerID: uuid.MustParse(req.DesignerID),
		Date:       date,
		Demand:     req.Demand,
	}

	if err := s.repo.Upsert(ctx, o); err != nil {
		s.logger.Error("upsert override persist failed", zap.Error(err))
		return OverrideResponse{}, err
	}

	s.logger.Info("upsert override success",
		zap.String("designer_id", req.DesignerID),
		zap.String("date", req.Date),
		zap.Float64("demand", req.Demand),
	)
	return mapToResponse(*o), nil
}

func (s *service) GetByMonth(ctx context.Context, storeID, month string) ([]OverrideResponse, error) {
	from, to, err := dateutil.MonthRange(month)
	if err != nil {
		return nil, overrideerrors.ErrInvalidMonthFormat
	}

	overrides, err := s.repo.FindByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]OverrideResponse, len(overrides))
	for i, o := range overrides {
		resp[i] = mapToResponse(o)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	return s.repo.Delete(ctx, storeID, id)
}

func mapToResponse(o DemandOverride) OverrideResponse {
	return OverrideResponse{
		ID:         o.ID.String(),
		DesignerID: o.DesignerID.String(),
		Date:       o.Date.Format(dateutil.DayLayout),
		Demand:     o.Demand,
	}
}
