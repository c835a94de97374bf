package handler

import (
	movieapp "github.com/Naveen2070/Hive-Movie/internal/application/movie"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/response"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MovieHandler handles movie catalog HTTP requests.
type MovieHandler struct {
	service   *movieapp.Service
	validator *validator.Validator
}

// NewMovieHandler creates a new movie handler.
func NewMovieHandler(service *movieapp.Service, validator *validator.Validator) *MovieHandler {
	return &MovieHandler{service: service, validator: validator}
}

// Create handles POST /api/movies.
func (h *MovieHandler) Create(c *gin.Context) {
	var req movieapp.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := h.validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// GetByID handles GET /api/movies/{id}.
func (h *MovieHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List handles GET /api/movies.
func (h *MovieHandler) List(c *gin.Context) {
	pagination := response.GetPagination(c)
	params := movieapp.ListParams{
		Search: c.Query("search"),
		Page:   pagination.Page,
		Limit:  pagination.Limit,
	}

	result, total, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result, pagination, total)
}

// Update handles PUT /api/movies/{id}.
func (h *MovieHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	var req movieapp.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := h.validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete handles DELETE /api/movies/{id}.
func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
