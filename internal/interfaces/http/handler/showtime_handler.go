package handler

import (
	showtimeapp "github.com/Naveen2070/Hive-Movie/internal/application/showtime"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/middleware"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/response"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShowtimeHandler handles showtime HTTP requests.
type ShowtimeHandler struct {
	service   *showtimeapp.Service
	validator *validator.Validator
}

// NewShowtimeHandler creates a new showtime handler.
func NewShowtimeHandler(service *showtimeapp.Service, validator *validator.Validator) *ShowtimeHandler {
	return &ShowtimeHandler{service: service, validator: validator}
}

// Create handles POST /api/showtimes.
func (h *ShowtimeHandler) Create(c *gin.Context) {
	var req showtimeapp.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
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

// GetByID handles GET /api/showtimes/{id}.
func (h *ShowtimeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid showtime id")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List handles GET /api/showtimes, optionally filtered by movie or auditorium.
func (h *ShowtimeHandler) List(c *gin.Context) {
	pagination := response.GetPagination(c)
	var filter repository.ShowtimeFilter

	if movieID := c.Query("movieId"); movieID != "" {
		if id, err := uuid.Parse(movieID); err == nil {
			filter.MovieID = &id
		}
	}
	if auditoriumID := c.Query("auditoriumId"); auditoriumID != "" {
		if id, err := uuid.Parse(auditoriumID); err == nil {
			filter.AuditoriumID = &id
		}
	}

	result, total, err := h.service.List(c.Request.Context(), filter, pagination.Offset(), pagination.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result, pagination, total)
}

// Update handles PUT /api/showtimes/{id}.
func (h *ShowtimeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid showtime id")
		return
	}

	var req showtimeapp.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if _, err := h.service.Update(c.Request.Context(), middleware.GetPrincipal(c), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete handles DELETE /api/showtimes/{id}.
func (h *ShowtimeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid showtime id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
