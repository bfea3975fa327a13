package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	stafferrors "github.com/ray0128/sunday-for-rayinhair/internal/staff/errors"
)

type Service interface {
	Create(ctx context.Context, storeID string, req CreateStaffRequest) (StaffResponse, error)
	GetAll(ctx context.Context, storeID string) ([]StaffResponse, error)
	GetByID(ctx context.Context, storeID, id string) (StaffResponse, error)
	Update(ctx context.Context, storeID, id string, req UpdateStaffRequest) (StaffResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("staff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, storeID string, req CreateStaffRequest) (StaffResponse, error) {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStoreID
	}
	if err := validateOverrides(req.BaseDemand, req.BaseSupply); err != nil {
		return StaffResponse{}, err
	}

	u := &User{
		ID:         uuid.New(),
		StoreID:    storeUUID,
		Name:       req.Name,
		Role:       req.Role,
		BaseDemand: req.BaseDemand,
		BaseSupply: req.BaseSupply,
		Active:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create staff persist failed", zap.Error(err))
		return StaffResponse{}, err
	}

	s.logger.Info("create staff success",
		zap.String("staff_id", u.ID.String()),
		zap.String("store_id", storeID),
		zap.String("role", u.Role),
	)
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context, storeID string) ([]StaffResponse, error) {
	users, err := s.repo.FindAllByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	resp := make([]StaffResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string) (StaffResponse, error) {
	u, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffResponse{}, stafferrors.ErrStaffNotFound
		}
		return StaffResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, storeID, id string, req UpdateStaffRequest) (StaffResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStaffID
	}
	if err := validateOverrides(req.BaseDemand, req.BaseSupply); err != nil {
		return StaffResponse{}, err
	}

	u, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffResponse{}, stafferrors.ErrStaffNotFound
		}
		return StaffResponse{}, err
	}

	u.Name = req.Name
	u.Role = req.Role
	u.BaseDemand = req.BaseDemand
	u.BaseSupply = req.BaseSupply
	if req.Active != nil {
		u.Active = *req.Active
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update staff persist failed", zap.String("staff_id", id), zap.Error(err))
		return StaffResponse{}, err
	}

	s.logger.Info("update staff success",
		zap.String("staff_id", id),
		zap.String("role", u.Role),
		zap.Bool("active", u.Active),
	)
	return mapToResponse(*u), nil
}

func validateOverrides(baseDemand, baseSupply *float64) error {
	if baseDemand != nil && *baseDemand < 0 {
		return stafferrors.ErrNegativeOverride
	}
	if baseSupply != nil && *baseSupply < 0 {
		return stafferrors.ErrNegativeOverride
	}
	return nil
}

func mapToResponse(u User) StaffResponse {
	return StaffResponse{
		ID:         u.ID.String(),
		StoreID:    u.StoreID.String(),
		Name:       u.Name,
		Role:       u.Role,
		BaseDemand: u.BaseDemand,
		BaseSupply: u.BaseSupply,
		Active:     u.Active,
	}
}
