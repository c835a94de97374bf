package handler

import (
	auditoriumapp "github.com/Naveen2070/Hive-Movie/internal/application/auditorium"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/middleware"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/response"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditoriumHandler handles auditorium HTTP requests.
type AuditoriumHandler struct {
	service   *auditoriumapp.Service
	validator *validator.Validator
}

// NewAuditoriumHandler creates a new auditorium handler.
func NewAuditoriumHandler(service *auditoriumapp.Service, validator *validator.Validator) *AuditoriumHandler {
	return &AuditoriumHandler{service: service, validator: validator}
}

// Create handles POST /api/auditoriums.
func (h *AuditoriumHandler) Create(c *gin.Context) {
	var req auditoriumapp.CreateRequest
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

// GetByID handles GET /api/auditoriums/{id}.
func (h *AuditoriumHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid auditorium id")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List handles GET /api/auditoriums.
func (h *AuditoriumHandler) List(c *gin.Context) {
	pagination := response.GetPagination(c)

	result, total, err := h.service.List(c.Request.Context(), pagination.Offset(), pagination.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result, pagination, total)
}

// ListByCinema handles GET /api/auditoriums/cinema/{cinemaId}.
func (h *AuditoriumHandler) ListByCinema(c *gin.Context) {
	cinemaID, err := uuid.Parse(c.Param("cinemaId"))
	if err != nil {
		response.BadRequest(c, "invalid cinema id")
		return
	}

	result, err := h.service.ListByCinema(c.Request.Context(), cinemaID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Update handles PUT /api/auditoriums/{id}.
func (h *AuditoriumHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid auditorium id")
		return
	}

	var req auditoriumapp.UpdateRequest
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

// Delete handles DELETE /api/auditoriums/{id}.
func (h *AuditoriumHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid auditorium id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
