package availability_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ray0128/sunday-for-rayinhair/internal/availability"
	availabilityerrors "github.com/ray0128/sunday-for-rayinhair/internal/availability/errors"
	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
)

type fakeAvailabilityService struct {
	computeMonthFn func(ctx context.Context, storeID string, requester availability.Requester, month string) (availability.MonthAvailability, error)
}

func (f *fakeAvailabilityService) ComputeMonth(ctx context.Context, storeID string, requester availability.Requester, month string) (availability.MonthAvailability, error) {
	return f.computeMonthFn(ctx, storeID, requester, month)
}

func TestAvailabilityHandler_GetMonth(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAvailabilityService{
			computeMonthFn: func(ctx context.Context, storeID string, requester availability.Requester, month string) (availability.MonthAvailability, error) {
				assert.Equal(t, "store-1", storeID)
				assert.Equal(t, "user-1", requester.ID)
				assert.Equal(t, domain.RoleAssistant, requester.Role)
				assert.Equal(t, "2026-09", month)
				return availability.MonthAvailability{
					Month: month,
					Days:  []availability.DayAvailability{{Date: "2026-09-01", Selectable: true}},
				}, nil
			},
		}

		h := availability.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/availability?month=2026-09", nil)
		c.Set("store_id", "store-1")
		c.Set("user_id", "user-1")
		c.Set("role", domain.RoleAssistant)

		h.GetMonth(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Ok   bool                           `json:"ok"`
			Data availability.MonthAvailability `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, "2026-09", env.Data.Month)
		assert.Len(t, env.Data.Days, 1)
	})

	t.Run("negative invalid month", func(t *testing.T) {
		svc := &fakeAvailabilityService{
			computeMonthFn: func(ctx context.Context, storeID string, requester availability.Requester, month string) (availability.MonthAvailability, error) {
				return availability.MonthAvailability{}, availabilityerrors.ErrInvalidMonthFormat
			},
		}

		h := availability.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/availability?month=bogus", nil)

		h.GetMonth(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
