package handler

import (
	"github.com/Naveen2070/Hive-Movie/internal/application/seatmap"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SeatMapHandler serves the read-only seat-map projection.
type SeatMapHandler struct {
	service *seatmap.Service
}

// NewSeatMapHandler creates a new seat-map handler.
func NewSeatMapHandler(service *seatmap.Service) *SeatMapHandler {
	return &SeatMapHandler{service: service}
}

// Get handles GET /api/showtimes/{id}/seatmap.
func (h *SeatMapHandler) Get(c *gin.Context) {
	showtimeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid showtime id")
		return
	}

	result, err := h.service.Get(c.Request.Context(), showtimeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
