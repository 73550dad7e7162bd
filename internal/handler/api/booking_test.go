//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/handler/api"
	reqdto "pickup-scheduler/internal/handler/dto/request"
	resdto "pickup-scheduler/internal/handler/dto/response"
	"pickup-scheduler/internal/usecase/commands"
	"pickup-scheduler/internal/usecase/queries"
	"pickup-scheduler/tests/common/builder"
	"pickup-scheduler/tests/common/httptest"
	"pickup-scheduler/tests/common/testutil"
	commandsmock "pickup-scheduler/tests/mock/commands"
	queriesmock "pickup-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockSlotQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/validate-order", s.handler.ValidateOrder)
	s.router.GET("/api/available-slots", s.handler.AvailableSlots)
	s.router.POST("/api/book-appointment", s.handler.BookAppointment)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestValidateOrder
// ================================================================================

func (s *BookingHandlerTestSuite) TestValidateOrder() {
	url := "/api/validate-order"
	reqBody := reqdto.ValidateOrderRequest{OrderNumber: "SO-1001"}
	ord := builder.NewOrderBuilder().BuildDomain()

	s.Run("success: order without appointment", func() {
		s.mockCommands.EXPECT().ValidateOrder(gomock.Any(), "SO-1001").
			Return(&commands.OrderStatus{Order: ord}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.ValidateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("SO-1001", res.Order.OrderNumber)
		s.Equal("Ready to Pickup", res.Order.Status)
		s.False(res.Order.HasAppointment)
		s.Equal("Order validated and ready for scheduling", res.Message)
	})

	s.Run("success: order with existing appointment", func() {
		appt := builder.NewAppointmentBuilder().BuildDomain()
		s.mockCommands.EXPECT().ValidateOrder(gomock.Any(), "SO-1001").
			Return(&commands.OrderStatus{Order: ord, Appointment: &appt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.ValidateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Order.HasAppointment)
		s.Equal("2025-01-15", res.Order.AppointmentDate)
		s.Equal("9:00 AM", res.Order.AppointmentTime)
		s.Contains(res.Message, "2025-01-15 at 9:00 AM")
	})

	s.Run("error: 400 when order number is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("orderNumber", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Order number is required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "order not found",
				commandsError:  commands.ErrOrderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Order not found or not ready for pickup yet",
			},
			{
				name:           "order picked up",
				commandsError:  commands.ErrOrderPickedUp,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already been picked up",
			},
			{
				name:           "store failure",
				commandsError:  commands.ErrStoreFailure,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Server error",
			},
			{
				name:           "appointments file busy",
				commandsError:  commands.ErrStoreConflict,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Appointments file is busy",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ValidateOrder(gomock.Any(), "SO-1001").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAvailableSlots
// ================================================================================

func (s *BookingHandlerTestSuite) TestAvailableSlots() {
	url := "/api/available-slots"

	s.Run("success: returns slots as ISO strings", func() {
		view := &queries.SlotAvailabilityView{
			Slots: []slot.Slot{
				slot.MustParse("2025-01-15T09:30:00Z"),
				slot.MustParse("2025-01-15T10:00:00Z"),
			},
			TotalSlots:     3,
			AvailableCount: 2,
			BookedCount:    1,
		}
		s.mockQueries.EXPECT().AvailableSlots(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.AvailableSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal([]string{"2025-01-15T09:30:00Z", "2025-01-15T10:00:00Z"}, res.Slots)
		s.Equal(3, res.TotalSlots)
		s.Equal(2, res.AvailableCount)
		s.Equal(1, res.BookedCount)
	})

	s.Run("success: empty list is an array, not null", func() {
		s.mockQueries.EXPECT().AvailableSlots(gomock.Any()).
			Return(&queries.SlotAvailabilityView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"slots":[]`)
	})

	s.Run("error: 500 when the appointments file cannot be read", func() {
		s.mockQueries.EXPECT().AvailableSlots(gomock.Any()).
			Return(nil, queries.ErrAvailabilityUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Server error while fetching available slots")
	})
}

// ================================================================================
// TestBookAppointment
// ================================================================================

func (s *BookingHandlerTestSuite) TestBookAppointment() {
	url := "/api/book-appointment"

	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildDTO()
	appt := b.BuildDomain()
	expectedInput := commands.BookAppointmentInput{
		OrderNumber:   b.OrderNumber,
		Slot:          b.Slot,
		CustomerEmail: b.CustomerEmail,
	}
	expectedResult := &commands.BookAppointmentResult{Appointment: appt, Slot: b.Slot, EmailSent: true}

	validation := []testCaseBooking{
		{name: "missing field: orderNumber", mutate: testutil.Field("orderNumber", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: slotTime", mutate: testutil.Field("slotTime", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customerEmail", mutate: testutil.Field("customerEmail", nil), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Field("customerEmail", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "slot without trailing Z", mutate: testutil.Field("slotTime", "2025-01-15T09:00:00"), expectCode: http.StatusBadRequest},
		{name: "slot with offset", mutate: testutil.Field("slotTime", "2025-01-15T09:00:00+00:00"), expectCode: http.StatusBadRequest},
		{name: "slot not a date", mutate: testutil.Field("slotTime", "tomorrow"), expectCode: http.StatusBadRequest},
		{name: "order number too long", mutate: testutil.Field("orderNumber", strings.Repeat("9", 65)), expectCode: http.StatusBadRequest},
		{name: "slot with milliseconds", mutate: testutil.Field("slotTime", "2025-01-15T09:00:00.000Z"), expectCode: http.StatusOK},
	}

	s.Run("success: returns booked appointment", func() {
		s.mockCommands.EXPECT().BookAppointment(gomock.Any(), expectedInput).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.BookAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Appointment booked successfully", res.Message)
		s.True(res.EmailSent)
		s.Equal("SO-1001", res.Appointment.OrderNumber)
		s.Equal("2025-01-15", res.Appointment.AppointmentDate)
		s.Equal("9:00 AM", res.Appointment.AppointmentTime)
		s.Equal("2025-01-15T09:00:00Z", res.Appointment.SlotTime)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().BookAppointment(gomock.Any(), gomock.Any()).
						Return(expectedResult, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: existing appointment is reported in detail", func() {
		s.mockCommands.EXPECT().BookAppointment(gomock.Any(), expectedInput).
			Return(nil, &commands.ExistingAppointmentError{Appointment: appt}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Order already has a scheduled appointment")
		s.Equal(map[string]any{"existingAppointment": "2025-01-15 at 9:00 AM"}, resp.Detail)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot locked by a concurrent booking",
				commandsError:  commands.ErrSlotLocked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "currently being booked by another customer",
			},
			{
				name:           "slot already taken",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				name:           "slot outside the calendar",
				commandsError:  commands.ErrInvalidSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "not an available pickup slot",
			},
			{
				name:           "order not found",
				commandsError:  commands.ErrOrderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Order not found",
			},
			{
				name:           "order picked up",
				commandsError:  commands.ErrOrderPickedUp,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already been picked up",
			},
			{
				name:           "appointments file locked remotely",
				commandsError:  commands.ErrStoreConflict,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "busy",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Server error while booking appointment",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BookAppointment(gomock.Any(), expectedInput).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
