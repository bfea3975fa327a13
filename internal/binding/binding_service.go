package binding

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	bindingerrors "github.com/ray0128/sunday-for-rayinhair/internal/binding/errors"
	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
)

type Service interface {
	Create(ctx context.Context, storeID string, req CreateBindingRequest) (BindingResponse, error)
	GetAll(ctx context.Context, storeID string) ([]BindingResponse, error)
	Deactivate(ctx context.Context, storeID, id string) (BindingResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("binding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("binding.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, storeID string, req CreateBindingRequest) (BindingResponse, error) {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return BindingResponse{}, bindingerrors.ErrInvalidStoreID
	}

	assistantRole, err := s.repo.ActiveStaffRole(ctx, storeID, req.AssistantID)
	if err != nil {
		return BindingResponse{}, err
	}
	designerRole, err := s.repo.ActiveStaffRole(ctx, storeID, req.DesignerID)
	if err != nil {
		return BindingResponse{}, err
	}
	if assistantRole != domain.RoleAssistant || designerRole != domain.RoleDesigner {
		return BindingResponse{}, bindingerrors.ErrInvalidStaffPair
	}

	exists, err := s.repo.HasActivePair(ctx, storeID, req.AssistantID, req.DesignerID)
	if err != nil {
		return BindingResponse{}, err
	}
	if exists {
		return BindingResponse{}, bindingerrors.ErrBindingExists
	}

	b := &Binding{
		ID:          uuid.New(),
		StoreID:     storeUUID,
		AssistantID: uuid.MustParse(req.AssistantID),
		DesignerID:  uuid.MustParse(req.DesignerID),
		Active:      true,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("create binding persist failed", zap.Error(err))
		return BindingResponse{}, err
	}

	s.logger.Info("create binding success",
		zap.String("binding_id", b.ID.String()),
		zap.String("assistant_id", req.AssistantID),
		zap.String("designer_id", req.DesignerID),
	)
	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context, storeID string) ([]BindingResponse, error) {
	bindings, err := s.repo.FindAllByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	resp := make([]BindingResponse, len(bindings))
	for i, b := range bindings {
		resp[i] = mapToResponse(b)
	}
	return resp, nil
}

func (s *service) Deactivate(ctx context.Context, storeID, id string) (BindingResponse, error) {
	b, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BindingResponse{}, bindingerrors.ErrBindingNotFound
		}
		return BindingResponse{}, err
	}

	b.Active = false
	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error("deactivate binding persist failed", zap.String("binding_id", id), zap.Error(err))
		return BindingResponse{}, err
	}

	s.logger.Info("deactivate binding success", zap.String("binding_id", id))
	return mapToResponse(*b), nil
}

func mapToResponse(b Binding) BindingResponse {
	return BindingResponse{
		ID:          b.ID.String(),
		StoreID:     b.StoreID.String(),
		AssistantID: b.AssistantID.String(),
		DesignerID:  b.DesignerID.String(),
		Active:      b.Active,
	}
}
