package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	bookingerrors "github.com/ray0128/sunday-for-rayinhair/internal/booking/errors"
	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
	"github.com/ray0128/sunday-for-rayinhair/internal/shared/dateutil"
)

const clockLayout = "15:04"

type Service interface {
	Create(ctx context.Context, storeID, actorID, actorRole string, req CreateBookingRequest) (BookingResponse, error)
	GetByMonth(ctx context.Context, storeID, month string) ([]BookingResponse, error)
	Delete(ctx context.Context, storeID, actorID, actorRole, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("booking.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("booking.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, storeID, actorID, actorRole string, req CreateBookingRequest) (BookingResponse, error) {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidStoreID
	}

	// rookies only book for themselves, managers for anyone
	if actorRole == domain.RoleRookie && actorID != req.RookieID {
		return BookingResponse{}, bookingerrors.ErrNotBookingOwner
	}

	date, err := dateutil.ParseDay(req.Date)
	if err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidDateFormat
	}

	start, err := time.Parse(clockLayout, req.StartTime)
	if err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidTimeRange
	}
	end, err := time.Parse(clockLayout, req.EndTime)
	if err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidTimeRange
	}
	if !start.Before(end) {
		return BookingResponse{}, bookingerrors.ErrInvalidTimeRange
	}

	role, err := s.repo.ActiveStaffRole(ctx, storeID, req.RookieID)
	if err != nil {
		return BookingResponse{}, err
	}
	if role != domain.RoleRookie {
		return BookingResponse{}, bookingerrors.ErrNotARookie
	}

	b := &RookieBooking{
		ID:        uuid.New(),
		StoreID:   storeUUID,
		RookieID:  uuid.MustParse(req.RookieID),
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("create booking persist failed", zap.Error(err))
		return BookingResponse{}, err
	}

	s.logger.Info("create booking success",
		zap.String("booking_id", b.ID.String()),
		zap.String("rookie_id", req.RookieID),
		zap.String("date", req.Date),
	)
	return mapToResponse(*b), nil
}

func (s *service) GetByMonth(ctx context.Context, storeID, month string) ([]BookingResponse, error) {
	from, to, err := dateutil.MonthRange(month)
	if err != nil {
		return nil, bookingerrors.ErrInvalidMonthFormat
	}

	bookings, err := s.repo.FindByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = mapToResponse(b)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, storeID, actorID, actorRole, id string) error {
	b, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bookingerrors.ErrBookingNotFound
		}
		return err
	}

	if actorRole == domain.RoleRookie && b.RookieID.String() != actorID {
		return bookingerrors.ErrNotBookingOwner
	}

	return s.repo.Delete(ctx, storeID, id)
}

func mapToResponse(b RookieBooking) BookingResponse {
	return BookingResponse{
		ID:        b.ID.String(),
		RookieID:  b.RookieID.String(),
		Date:      b.Date.Format(dateutil.DayLayout),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}
