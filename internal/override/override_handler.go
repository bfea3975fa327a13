package override

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
	l := zap.L().Named("override.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("override.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upsert(c *gin.Context) {
	storeID := c.GetString("store_id")

	var req UpsertOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http upsert override validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), storeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByMonth(c *gin.Context) {
	storeID := c.GetString("store_id")
	month := c.Query("month")

	resp, err := h.service.GetByMonth(c.Request.Context(), storeID, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	storeID := c.GetString("store_id")
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), storeID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
