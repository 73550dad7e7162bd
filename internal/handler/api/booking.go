package api

import (
	"net/http"
	"time"

	reqdto "pickup-scheduler/internal/handler/dto/request"
	resdto "pickup-scheduler/internal/handler/dto/response"
	"pickup-scheduler/internal/handler/httperr"
	"pickup-scheduler/internal/pkg/errs"
	"pickup-scheduler/internal/usecase/commands"
	"pickup-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// storeBusyRetryAfter covers the appointments file upload backoff.
const storeBusyRetryAfter = 5 * time.Second

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.SlotQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.SlotQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Validate order
// @Description Check that an order is ready for pickup and report any existing appointment
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateOrderRequest true "Validate order request"
// @Success 200 {object} resdto.ValidateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/validate-order [post]
func (h *BookingHandler) ValidateOrder(c *gin.Context) {
	var req reqdto.ValidateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Order number is required", nil)
		return
	}

	status, err := h.cmds.ValidateOrder(c.Request.Context(), req.OrderNumber)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order number is required", nil)
		case errs.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found or not ready for pickup yet. Please check with staff.", nil)
		case errs.Is(err, commands.ErrOrderPickedUp):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "This order has already been picked up. No appointment needed.", nil)
		case errs.Is(err, commands.ErrStoreConflict):
			httperr.AbortRetryable(c, http.StatusServiceUnavailable, err, "Appointments file is busy, please try again", storeBusyRetryAfter)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server error while validating order", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderStatus(status))
}

// @Summary List available slots
// @Description Open pickup slots for the coming business days, excluding booked ones
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.AvailableSlotsResponse
// @Failure 500 {object} httperr.Response
// @Router /api/available-slots [get]
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	view, err := h.q.AvailableSlots(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server error while fetching available slots", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotAvailability(view))
}

// @Summary Book appointment
// @Description Reserve a pickup slot for an order and email a confirmation
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.BookAppointmentRequest true "Book appointment request"
// @Success 200 {object} resdto.BookAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/book-appointment [post]
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Order number, slot time, and customer email are required", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot time", nil)
		return
	}

	result, err := h.cmds.BookAppointment(c.Request.Context(), in)
	if err != nil {
		var existing *commands.ExistingAppointmentError
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order number, slot time, and customer email are required", nil)
		case errs.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Selected time is not an available pickup slot", nil)
		case errs.Is(err, commands.ErrSlotLocked):
			httperr.AbortWithError(c, http.StatusConflict, err, "This time slot is currently being booked by another customer", nil)
		case errs.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errs.Is(err, commands.ErrOrderPickedUp):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "This order has already been picked up. No appointment needed.", nil)
		case errs.As(err, &existing):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order already has a scheduled appointment",
				gin.H{"existingAppointment": existing.Appointment.Display()})
		case errs.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "This time slot is no longer available", nil)
		case errs.Is(err, commands.ErrStoreConflict):
			httperr.AbortRetryable(c, http.StatusServiceUnavailable, err, "Appointments file is busy, please try again", storeBusyRetryAfter)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server error while booking appointment", nil)
		}
		return
	}

	res, err := resdto.FromBookResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
