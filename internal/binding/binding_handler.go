package binding

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
	l := zap.L().Named("binding.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("binding.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	storeID := c.GetString("store_id")

	var req CreateBindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create binding validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), storeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	storeID := c.GetString("store_id")

	resp, err := h.service.GetAll(c.Request.Context(), storeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Deactivate(c *gin.Context) {
	storeID := c.GetString("store_id")
	id := c.Param("id")

	resp, err := h.service.Deactivate(c.Request.Context(), storeID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
