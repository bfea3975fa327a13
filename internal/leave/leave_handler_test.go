package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
	"github.com/ray0128/sunday-for-rayinhair/internal/leave"
	leaveerrors "github.com/ray0128/sunday-for-rayinhair/internal/leave/errors"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createFn     func(ctx context.Context, storeID, actorID, actorRole string, req leave.CreateLeaveRequest) (leave.CreateLeaveResponse, error)
	getByMonthFn func(ctx context.Context, storeID, month string) ([]leave.LeaveResponse, error)
	approveFn    func(ctx context.Context, storeID, actorID, id string) (leave.CascadeResponse, error)
	rejectFn     func(ctx context.Context, storeID, actorID, id string) (leave.CascadeResponse, error)
	cancelFn     func(ctx context.Context, storeID, actorID, id string) (leave.CascadeResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, storeID, actorID, actorRole string, req leave.CreateLeaveRequest) (leave.CreateLeaveResponse, error) {
	return f.createFn(ctx, storeID, actorID, actorRole, req)
}
func (f *fakeLeaveService) GetByMonth(ctx context.Context, storeID, month string) ([]leave.LeaveResponse, error) {
	return f.getByMonthFn(ctx, storeID, month)
}
func (f *fakeLeaveService) Approve(ctx context.Context, storeID, actorID, id string) (leave.CascadeResponse, error) {
	return f.approveFn(ctx, storeID, actorID, id)
}
func (f *fakeLeaveService) Reject(ctx context.Context, storeID, actorID, id string) (leave.CascadeResponse, error) {
	return f.rejectFn(ctx, storeID, actorID, id)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, storeID, actorID, id string) (leave.CascadeResponse, error) {
	return f.cancelFn(ctx, storeID, actorID, id)
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		storeID := uuid.New().String()
		actorID := uuid.New().String()

		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, sid, aid, role string, req leave.CreateLeaveRequest) (leave.CreateLeaveResponse, error) {
				assert.Equal(t, storeID, sid)
				assert.Equal(t, actorID, aid)
				assert.Equal(t, domain.RoleAssistant, role)
				assert.Equal(t, actorID, req.UserID)
				return leave.CreateLeaveResponse{
					Leave: leave.LeaveResponse{
						ID:        uuid.New().String(),
						UserID:    req.UserID,
						Date:      req.Date,
						Status:    leave.StatusPending,
						Source:    leave.SourceSelf,
						CreatedBy: aid,
					},
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"user_id":"` + actorID + `","date":"2026-09-15"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("store_id", storeID)
		c.Set("user_id", actorID)
		c.Set("role", domain.RoleAssistant)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Nil(t, env.Error)
	})

	t.Run("negative invalid body", func(t *testing.T) {
		svc := &fakeLeaveService{}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"user_id":"not-a-uuid"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative conflict propagates", func(t *testing.T) {
		actorID := uuid.New().String()
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, sid, aid, role string, req leave.CreateLeaveRequest) (leave.CreateLeaveResponse, error) {
				return leave.CreateLeaveResponse{}, leaveerrors.ErrAlreadyRequested
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"user_id":"` + actorID + `","date":"2026-09-15"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestLeaveHandler_Transitions(t *testing.T) {
	t.Run("approve returns affected ids", func(t *testing.T) {
		storeID := uuid.New().String()
		leaveID := uuid.New().String()
		mirrorID := uuid.New().String()

		svc := &fakeLeaveService{
			approveFn: func(ctx context.Context, sid, aid, id string) (leave.CascadeResponse, error) {
				assert.Equal(t, leaveID, id)
				return leave.CascadeResponse{
					ID:          leaveID,
					Status:      leave.StatusApproved,
					AffectedIDs: []string{leaveID, mirrorID},
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves/"+leaveID+"/approve", nil)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Set("store_id", storeID)

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var data leave.CascadeResponse
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, leave.StatusApproved, data.Status)
		assert.Equal(t, []string{leaveID, mirrorID}, data.AffectedIDs)
	})

	t.Run("cancel forbidden", func(t *testing.T) {
		leaveID := uuid.New().String()
		svc := &fakeLeaveService{
			cancelFn: func(ctx context.Context, sid, aid, id string) (leave.CascadeResponse, error) {
				return leave.CascadeResponse{}, leaveerrors.ErrNotCancelable
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves/"+leaveID+"/cancel", nil)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}

		h.Cancel(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})
}
