package handler

import (
	cinemaapp "github.com/Naveen2070/Hive-Movie/internal/application/cinema"
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/middleware"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/response"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CinemaHandler handles cinema HTTP requests.
type CinemaHandler struct {
	service   *cinemaapp.Service
	validator *validator.Validator
}

// NewCinemaHandler creates a new cinema handler.
func NewCinemaHandler(service *cinemaapp.Service, validator *validator.Validator) *CinemaHandler {
	return &CinemaHandler{service: service, validator: validator}
}

// Create handles POST /api/cinemas.
func (h *CinemaHandler) Create(c *gin.Context) {
	var req cinemaapp.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := h.validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	result, err := h.service.Create(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// GetByID handles GET /api/cinemas/{id}.
func (h *CinemaHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid cinema id")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List handles GET /api/cinemas.
func (h *CinemaHandler) List(c *gin.Context) {
	pagination := response.GetPagination(c)
	params := cinemaapp.ListParams{Page: pagination.Page, Limit: pagination.Limit}

	result, total, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result, pagination, total)
}

// Update handles PUT /api/cinemas/{id}.
func (h *CinemaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid cinema id")
		return
	}

	var req cinemaapp.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := h.validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), middleware.GetPrincipal(c), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete handles DELETE /api/cinemas/{id}.
func (h *CinemaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid cinema id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateApprovalStatus handles PATCH /api/cinemas/{id}/status?status=….
func (h *CinemaHandler) UpdateApprovalStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid cinema id")
		return
	}

	status := entity.ApprovalStatus(c.Query("status"))
	switch status {
	case entity.ApprovalPending, entity.ApprovalApproved, entity.ApprovalRejected:
	default:
		response.BadRequest(c, "invalid status")
		return
	}

	if err := h.service.UpdateApprovalStatus(c.Request.Context(), middleware.GetPrincipal(c), id, status); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
