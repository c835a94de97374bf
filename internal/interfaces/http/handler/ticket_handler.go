package handler

import (
	"github.com/Naveen2070/Hive-Movie/internal/application/reservation"
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/middleware"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/response"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// reserveRequest is the wire shape of POST /api/tickets/reserve.
type reserveRequest struct {
	ShowtimeID uuid.UUID      `json:"showtimeId" validate:"required"`
	Seats      []entity.Coord `json:"seats" validate:"required,min=1"`
}

// paymentSuccessRequest is the wire shape of the payment webhook.
type paymentSuccessRequest struct {
	BookingReference string `json:"bookingReference" validate:"required"`
}

// TicketHandler handles reservation and payment-webhook HTTP requests.
type TicketHandler struct {
	service   *reservation.Service
	validator *validator.Validator
}

// NewTicketHandler creates a new ticket handler.
func NewTicketHandler(service *reservation.Service, validator *validator.Validator) *TicketHandler {
	return &TicketHandler{service: service, validator: validator}
}

// Reserve handles POST /api/tickets/reserve.
func (h *TicketHandler) Reserve(c *gin.Context) {
	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := h.validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	principal := middleware.GetPrincipal(c)
	result, err := h.service.Reserve(c.Request.Context(), reservation.ReserveInput{
		ShowtimeID: req.ShowtimeID,
		Seats:      req.Seats,
		UserID:     principal.UserID,
		UserEmail:  principal.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// MyBookings handles GET /api/tickets/my-bookings.
func (h *TicketHandler) MyBookings(c *gin.Context) {
	pagination := response.GetPagination(c)
	principal := middleware.GetPrincipal(c)

	result, total, err := h.service.ListOwnTickets(c.Request.Context(), principal.UserID, pagination.Offset(), pagination.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result, pagination, total)
}

// PaymentSuccess handles POST /api/tickets/payment/success, the
// anonymous payment-provider webhook.
func (h *TicketHandler) PaymentSuccess(c *gin.Context) {
	var req paymentSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := h.validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	if err := h.service.ConfirmPayment(c.Request.Context(), req.BookingReference); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
