package store

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	storeerrors "github.com/ray0128/sunday-for-rayinhair/internal/store/errors"
)

type Service interface {
	Get(ctx context.Context, storeID string) (StoreResponse, error)
	Update(ctx context.Context, storeID string, req UpdateStoreRequest) (StoreResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("store.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("store.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context, storeID string) (StoreResponse, error) {
	st, err := s.repo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StoreResponse{}, storeerrors.ErrStoreNotFound
		}
		return StoreResponse{}, err
	}
	return mapToResponse(*st), nil
}

func (s *service) Update(ctx context.Context, storeID string, req UpdateStoreRequest) (StoreResponse, error) {
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return StoreResponse{}, storeerrors.ErrInvalidTimezone
	}

	st, err := s.repo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StoreResponse{}, storeerrors.ErrStoreNotFound
		}
		return StoreResponse{}, err
	}

	st.Name = req.Name
	st.Timezone = req.Timezone

	if err := s.repo.Update(ctx, st); err != nil {
		s.logger.Error("update store persist failed", zap.String("store_id", storeID), zap.Error(err))
		return StoreResponse{}, err
	}

	s.logger.Info("update store success",
		zap.String("store_id", storeID),
		zap.String("timezone", st.Timezone),
	)
	return mapToResponse(*st), nil
}

func mapToResponse(s Store) StoreResponse {
	return StoreResponse{
		ID:       s.ID.String(),
		Name:     s.Name,
		Timezone: s.Timezone,
		Active:   s.Active,
	}
}
