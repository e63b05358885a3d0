package incapacity

import (
	"net/http"

	"github.com/ProfileJass/Incapacities/internal/shared/apperror"
	"github.com/ProfileJass/Incapacities/internal/shared/contextutil"
	"github.com/ProfileJass/Incapacities/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("incapacity.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("incapacity.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateIncapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Incapacity created successfully", resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, "Incapacities retrieved successfully", resp, len(resp))
}

func (h *Handler) GetByUser(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid parameter", []apperror.FieldError{
			{Path: "userId", Message: "Invalid UUID format"},
		})
		return
	}

	resp, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, "User incapacities retrieved successfully", resp, len(resp))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid parameter", []apperror.FieldError{
			{Path: "id", Message: "Invalid UUID format"},
		})
		return
	}

	var req UpdateIncapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Incapacity updated successfully", resp)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	httpErr := apperror.ToHTTP(appErr)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		logger := contextutil.GetLogger(c.Request.Context(), h.logger)
		logger.Error("incapacity request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}
