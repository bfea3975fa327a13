package availability

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ray0128/sunday-for-rayinhair/internal/shared/apperror"
	"github.com/ray0128/sunday-for-rayinhair/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("availability.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("availability.handler")
	}
	return &Handler{service: service, logger: l}
}

// GetMonth answers "which days can I take off" for the authenticated staff
// member. The month defaults to nothing; callers must pass ?month=YYYY-MM.
func (h *Handler) GetMonth(c *gin.Context) {
	storeID := c.GetString("store_id")
	requester := Requester{
		ID:   c.GetString("user_id"),
		Role: c.GetString("role"),
	}
	month := c.Query("month")

	resp, err := h.service.ComputeMonth(c.Request.Context(), storeID, requester, month)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
