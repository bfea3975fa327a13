package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
	"github.com/ray0128/sunday-for-rayinhair/internal/events"
	leaveerrors "github.com/ray0128/sunday-for-rayinhair/internal/leave/errors"
	"github.com/ray0128/sunday-for-rayinhair/internal/messaging/kafka"
	"github.com/ray0128/sunday-for-rayinhair/internal/shared/contextutil"
	"github.com/ray0128/sunday-for-rayinhair/internal/shared/dateutil"
	"github.com/ray0128/sunday-for-rayinhair/internal/storeconfig"
)

type Service interface {
	Create(ctx context.Context, storeID, actorID, actorRole string, req CreateLeaveRequest) (CreateLeaveResponse, error)
	GetByMonth(ctx context.Context, storeID, month string) ([]LeaveResponse, error)
	Approve(ctx context.Context, storeID, actorID, id string) (CascadeResponse, error)
	Reject(ctx context.Context, storeID, actorID, id string) (CascadeResponse, error)
	Cancel(ctx context.Context, storeID, actorID, id string) (CascadeResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	configs storeconfig.Service
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	configs storeconfig.Service,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, configs: configs, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, storeID, actorID, actorRole string, req CreateLeaveRequest) (CreateLeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("store_id", storeID),
		zap.String("actor_id", actorID),
		zap.String("user_id", req.UserID),
		zap.String("date", req.Date),
	)

	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return CreateLeaveResponse{}, leaveerrors.ErrInvalidStoreID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return CreateLeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return CreateLeaveResponse{}, leaveerrors.ErrInvalidUserID
	}
	date, err := dateutil.ParseDay(req.Date)
	if err != nil {
		return CreateLeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	source := SourceSelf
	if req.UserID != actorID {
		if actorRole != domain.RoleManager {
			return CreateLeaveResponse{}, leaveerrors.ErrNotRequestOwner
		}
		source = SourceManager
	}

	targetRole, err := s.repo.ActiveStaffRole(ctx, storeID, req.UserID)
	if err != nil {
		s.logger.Error("create leave staff lookup failed", zap.String("request_id", rid), zap.Error(err))
		return CreateLeaveResponse{}, err
	}
	if !domain.IsValidRole(targetRole) {
		return CreateLeaveResponse{}, leaveerrors.ErrStaffNotInStore
	}

	snap, err := s.configs.LoadSnapshot(ctx, storeID)
	if err != nil {
		s.logger.Error("create leave config load failed", zap.String("request_id", rid), zap.Error(err))
		return CreateLeaveResponse{}, err
	}

	taken, err := s.repo.HasActiveOnDate(ctx, storeID, req.UserID, date)
	if err != nil {
		s.logger.Error("create leave active check failed", zap.String("request_id", rid), zap.Error(err))
		return CreateLeaveResponse{}, err
	}
	if taken {
		return CreateLeaveResponse{}, leaveerrors.ErrAlreadyRequested
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CreateLeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	parent := &LeaveRequest{
		ID:        uuid.New(),
		StoreID:   storeUUID,
		UserID:    userUUID,
		Date:      date,
		Status:    StatusPending,
		Source:    source,
		CreatedBy: actorUUID,
	}
	if err := qtx.Create(ctx, parent); err != nil {
		s.logger.Error("create leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateLeaveResponse{}, mapRepositoryError(err)
	}

	var mirrors []LeaveRequest
	if targetRole == domain.RoleDesigner && snap.BindingMirrorLeave == storeconfig.MirrorLeaveAutoCreate {
		mirrors, err = s.createMirrors(ctx, qtx, parent)
		if err != nil {
			s.logger.Error("create leave mirror cascade failed", zap.String("request_id", rid), zap.Error(err))
			return CreateLeaveResponse{}, mapRepositoryError(err)
		}
	}

	if err := s.queueEvent(ctx, tx, rid, events.LeaveRequested, parent, StatusPending, nil); err != nil {
		return CreateLeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return CreateLeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", parent.ID.String()),
		zap.String("source", source),
		zap.Int("mirrors", len(mirrors)),
	)

	resp := CreateLeaveResponse{Leave: mapToResponse(*parent)}
	for _, m := range mirrors {
		resp.Mirrors = append(resp.Mirrors, mapToResponse(m))
	}
	return resp, nil
}

// createMirrors inserts a BINDING_MIRROR request for every actively bound
// assistant. Assistants already holding an active record on the date are
// skipped rather than failed, so one busy assistant never blocks the
// designer's own request.
func (s *service) createMirrors(ctx context.Context, qtx Repository, parent *LeaveRequest) ([]LeaveRequest, error) {
	assistants, err := s.repo.ActiveBoundAssistants(ctx, parent.StoreID.String(), parent.UserID.String())
	if err != nil {
		return nil, err
	}

	var mirrors []LeaveRequest
	for _, assistantID := range assistants {
		taken, err := s.repo.HasActiveOnDate(ctx, parent.StoreID.String(), assistantID, parent.Date)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Debug("mirror skipped, assistant already has active leave",
				zap.String("assistant_id", assistantID),
				zap.Time("date", parent.Date),
			)
			continue
		}

		parentID := parent.ID
		m := LeaveRequest{
			ID:        uuid.New(),
			StoreID:   parent.StoreID,
			UserID:    uuid.MustParse(assistantID),
			Date:      parent.Date,
			Status:    StatusPending,
			Source:    SourceBindingMirror,
			MirrorOf:  &parentID,
			CreatedBy: parent.CreatedBy,
		}
		if err := qtx.Create(ctx, &m); err != nil {
			return nil, err
		}
		mirrors = append(mirrors, m)
	}
	return mirrors, nil
}

func (s *service) GetByMonth(ctx context.Context, storeID, month string) ([]LeaveResponse, error) {
	from, to, err := dateutil.MonthRange(month)
	if err != nil {
		return nil, leaveerrors.ErrInvalidMonthFormat
	}

	leaves, err := s.repo.FindByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp, nil
}

func (s *service) Approve(ctx context.Context, storeID, actorID, id string) (CascadeResponse, error) {
	return s.resolve(ctx, storeID, actorID, id, StatusApproved, events.LeaveApproved)
}

func (s *service) Reject(ctx context.Context, storeID, actorID, id string) (CascadeResponse, error) {
	return s.resolve(ctx, storeID, actorID, id, StatusRejected, events.LeaveRejected)
}

// resolve applies a terminal decision to a pending request and cascades the
// same status to every PENDING mirror linked to it, in one transaction.
func (s *service) resolve(ctx context.Context, storeID, actorID, id, status, eventType string) (CascadeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	l, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CascadeResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return CascadeResponse{}, err
	}
	if l.Status != StatusPending {
		return CascadeResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	mirrors, err := s.repo.FindPendingMirrors(ctx, storeID, id)
	if err != nil {
		return CascadeResponse{}, err
	}

	affected := make([]string, 0, len(mirrors)+1)
	affected = append(affected, l.ID.String())
	for _, m := range mirrors {
		affected = append(affected, m.ID.String())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("resolve leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CascadeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateStatus(ctx, storeID, affected, status); err != nil {
		s.logger.Error("resolve leave status update failed", zap.String("request_id", rid), zap.Error(err))
		return CascadeResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, rid, eventType, l, status, affected); err != nil {
		return CascadeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("resolve leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return CascadeResponse{}, err
	}

	s.logger.Info("resolve leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("status", status),
		zap.Int("affected", len(affected)),
	)
	return CascadeResponse{ID: id, Status: status, AffectedIDs: affected}, nil
}

func (s *service) Cancel(ctx context.Context, storeID, actorID, id string) (CascadeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	l, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CascadeResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return CascadeResponse{}, err
	}
	if l.Status != StatusPending {
		return CascadeResponse{}, leaveerrors.ErrInvalidStatusTransition
	}
	if l.CreatedBy.String() != actorID || l.UserID.String() != actorID {
		return CascadeResponse{}, leaveerrors.ErrNotCancelable
	}

	mirrors, err := s.repo.FindPendingMirrors(ctx, storeID, id)
	if err != nil {
		return CascadeResponse{}, err
	}

	affected := make([]string, 0, len(mirrors)+1)
	affected = append(affected, l.ID.String())
	for _, m := range mirrors {
		// Mirrors the actor did not create survive the cancellation.
		if m.CreatedBy.String() == actorID {
			affected = append(affected, m.ID.String())
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CascadeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateStatus(ctx, storeID, affected, StatusCanceled); err != nil {
		s.logger.Error("cancel leave status update failed", zap.String("request_id", rid), zap.Error(err))
		return CascadeResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, rid, events.LeaveCanceled, l, StatusCanceled, affected); err != nil {
		return CascadeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return CascadeResponse{}, err
	}

	s.logger.Info("cancel leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.Int("affected", len(affected)),
	)
	return CascadeResponse{ID: id, Status: StatusCanceled, AffectedIDs: affected}, nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, rid, eventType string, l *LeaveRequest, status string, affected []string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveStatusChangedEvent{
		EventType:   eventType,
		LeaveID:     l.ID.String(),
		StoreID:     l.StoreID.String(),
		UserID:      l.UserID.String(),
		Date:        l.Date.Format(dateutil.DayLayout),
		Status:      status,
		AffectedIDs: affected,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal leave event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   l.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("leave outbox persist failed",
			zap.String("request_id", rid),
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// mapRepositoryError turns the partial unique index violation on
// (user_id, date) into the conflict the caller can act on. Two concurrent
// creates both pass the pre-check; the index decides the winner.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return leaveerrors.ErrAlreadyRequested
	}
	return err
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:        l.ID.String(),
		UserID:    l.UserID.String(),
		Date:      l.Date.Format(dateutil.DayLayout),
		Status:    l.Status,
		Source:    l.Source,
		CreatedBy: l.CreatedBy.String(),
	}
	if l.MirrorOf != nil {
		mirrorOf := l.MirrorOf.String()
		resp.MirrorOf = &mirrorOf
	}
	return resp
}
