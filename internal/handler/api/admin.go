package api

import (
	"net/http"
	"time"

	reqdto "pickup-scheduler/internal/handler/dto/request"
	resdto "pickup-scheduler/internal/handler/dto/response"
	"pickup-scheduler/internal/handler/httperr"
	"pickup-scheduler/internal/pkg/config"
	"pickup-scheduler/internal/pkg/cookie"
	"pickup-scheduler/internal/pkg/errs"
	"pickup-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	auth         commands.AuthCommands
	cmds         commands.AdminCommands
	cookieConfig config.CookieConfig
	location     *time.Location
}

func NewAdminHandler(auth commands.AuthCommands, cmds commands.AdminCommands, cfg config.Config) *AdminHandler {
	return &AdminHandler{
		auth:         auth,
		cmds:         cmds,
		cookieConfig: cfg.Cookie,
		location:     cfg.Slots.SlotLocation(),
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a session token (also set as an HttpOnly cookie)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Password is required", nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Password is required", nil)
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Incorrect password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		}
		return
	}

	cookie.SetAdminToken(c, h.cookieConfig, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.LoginResponse{Token: result.Token, ExpiresAt: result.ExpiresAt})
}

// @Summary Admin logout
// @Description Clear the admin session cookie
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieConfig)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// @Summary List appointments
// @Description All complete appointments; stale rows are removed from the file as a side effect
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/admin/appointments [get]
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	result, err := h.cmds.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch appointments", nil)
		return
	}

	res, err := resdto.FromAppointmentList(result, h.location)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel appointment
// @Description Remove an order's appointment and notify the customer
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.CancelResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/admin/appointments/{orderNumber} [delete]
func (h *AdminHandler) CancelAppointment(c *gin.Context) {
	removed, err := h.cmds.CancelAppointment(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order number is required", nil)
		case errs.Is(err, commands.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errs.Is(err, commands.ErrStoreConflict):
			httperr.AbortRetryable(c, http.StatusServiceUnavailable, err, "Appointments file is busy, please try again", storeBusyRetryAfter)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel appointment", nil)
		}
		return
	}

	s, _ := removed.Slot(h.location)
	appt, err := resdto.FromAppointment(*removed, s)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelResponse{
		Message:     "Appointment cancelled successfully",
		Appointment: appt,
	})
}

// @Summary Reschedule appointment
// @Description Move an order's appointment to another open slot and notify the customer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Param request body reqdto.RescheduleRequest true "Reschedule request"
// @Success 200 {object} resdto.RescheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/admin/appointments/{orderNumber} [put]
func (h *AdminHandler) RescheduleAppointment(c *gin.Context) {
	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "New slot time is required", nil)
		return
	}
	newSlot, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot time", nil)
		return
	}

	result, err := h.cmds.RescheduleAppointment(c.Request.Context(), c.Param("orderNumber"), newSlot)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order number and new slot time are required", nil)
		case errs.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Selected time is not an available pickup slot", nil)
		case errs.Is(err, commands.ErrSlotLocked):
			httperr.AbortWithError(c, http.StatusConflict, err, "This time slot is currently being booked by another customer", nil)
		case errs.Is(err, commands.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errs.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "The new time slot is not available", nil)
		case errs.Is(err, commands.ErrStoreConflict):
			httperr.AbortRetryable(c, http.StatusServiceUnavailable, err, "Appointments file is busy, please try again", storeBusyRetryAfter)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reschedule appointment", nil)
		}
		return
	}

	res, err := resdto.FromReschedule(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
