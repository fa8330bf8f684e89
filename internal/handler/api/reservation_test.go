//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-management-api/internal/handler/api"
	resdto "hotel-management-api/internal/handler/dto/response"
	"hotel-management-api/internal/pkg/errs"
	"hotel-management-api/internal/usecase/commands"
	"hotel-management-api/internal/usecase/queries"
	"hotel-management-api/tests/common/builder"
	"hotel-management-api/tests/common/httptest"
	"hotel-management-api/tests/common/testutil"
	commandsmock "hotel-management-api/tests/mock/commands"
	queriesmock "hotel-management-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	g := s.router.Group("/api/reservations", withUserFromHeader(s.userID))
	g.POST("/quote", s.handler.Quote)
	g.GET("/rooms/list", s.handler.ListRooms)
	g.GET("/debug/pricing/:roomId", s.handler.DebugPricing)
	g.POST("", s.handler.Create)
	g.GET("", s.handler.List)
	g.GET("/:id", s.handler.Get)
	g.PUT("/:id", s.handler.Update)
	g.DELETE("/:id", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/reservations"
	b := builder.NewReservationBuilder().WithTimes("10:00:00", "16:00:00")
	reqBody := b.BuildRequestDTO()

	s.Run("success: 201 Created with reservation and breakdown", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), b.BuildInput(), s.userID).
			Return(b.BuildResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ReservationWithPriceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("2024-01-01", response.Reservation.CheckInDate)
		s.Equal("2024-01-03", response.Reservation.CheckOutDate)
		s.Equal("200.00", response.Reservation.TotalPrice)
		s.Equal(2, response.PriceBreakdown.Nights)
		s.Equal("100.00", response.PriceBreakdown.PerNightPrice)
		s.Equal("0.00", response.PriceBreakdown.EarlyCheckInCharge)
	})

	s.Run("error: 401 without authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseReservation{
			{name: "missing guestId", mutate: testutil.Field("guestId", nil), expectCode: http.StatusBadRequest},
			{name: "missing roomId", mutate: testutil.Field("roomId", nil), expectCode: http.StatusBadRequest},
			{name: "missing checkInDate", mutate: testutil.Field("checkInDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing checkOutDate", mutate: testutil.Field("checkOutDate", nil), expectCode: http.StatusBadRequest},
			{name: "zero adults", mutate: testutil.Field("numAdults", 0), expectCode: http.StatusBadRequest},
			{name: "negative children", mutate: testutil.Field("numChildren", -1), expectCode: http.StatusBadRequest},
			{name: "unknown status", mutate: testutil.Field("status", "pending"), expectCode: http.StatusBadRequest},
			{name: "unknown source", mutate: testutil.Field("source", "fax"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid dates", commandsError: errs.Mark(errors.New("check-out must be after check-in"), errs.ErrDomainValidation), expectedStatus: http.StatusBadRequest, expectedMsg: "Validation failed"},
			{name: "room not found", commandsError: errs.ErrRoomNotFound, expectedStatus: http.StatusBadRequest, expectedMsg: "Room not found"},
			{name: "guest not found", commandsError: errs.ErrGuestNotFound, expectedStatus: http.StatusBadRequest, expectedMsg: "Guest not found"},
			{name: "database failure", commandsError: errs.ErrDatabaseOperationFailed, expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestUpdate() {
	b := builder.NewReservationBuilder()
	reqBody := b.BuildRequestDTO()
	id := uuid.New()
	url := "/api/reservations/" + id.String()

	s.Run("success: 200 OK with recomputed price", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), id, b.BuildInput()).
			Return(b.BuildResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")

		var response resdto.ReservationWithPriceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("200.00", response.PriceBreakdown.TotalPrice)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservations/not-a-uuid", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})

	s.Run("error: 404 when reservation is missing", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrReservationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/api/reservations/" + id.String()

	s.Run("success: 200 OK", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Reservation cancelled successfully", response["message"])
	})

	s.Run("error: 404 when reservation is missing", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/api/reservations/" + view.ID.String()

	s.Run("success: 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Code, response.Code)
		s.Equal("14:00:00", response.CheckInTime)
	})

	s.Run("error: 404 when reservation is missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	items := []*queries.ReservationListItem{builder.NewReservationBuilder().BuildListItem()}

	s.Run("success: passes hotel filter and returns next cursor", func() {
		hotel := "entoto"
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().List(gomock.Any(), &hotel, &queries.Cursor{After: "abc"}, 5).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?hotel=entoto&limit=5&after=abc", nil, "token")

		var response struct {
			Reservations []resdto.ReservationListResponse `json:"reservations"`
			NextCursor   string                           `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reservations, 1)
		s.Equal("next-page", response.NextCursor)
	})

	s.Run("success: defaults limit when absent", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), nil, nil, 20).Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?after=garbage", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 400 on unknown hotel", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?hotel=atlantis", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})
}

func (s *ReservationHandlerTestSuite) TestQuote() {
	url := "/api/reservations/quote"
	b := builder.NewReservationBuilder().WithChildren("5,9", 2)
	reqBody := b.BuildQuoteDTO()

	s.Run("success: 200 OK with defaults echoed", func() {
		s.mockCommands.EXPECT().QuoteReservation(gomock.Any(), reqBody.ToInput()).
			Return(&commands.QuoteResult{
				RoomID:       b.RoomID,
				Hotel:        "entoto",
				CheckInTime:  "14:00:00",
				CheckOutTime: "12:00:00",
				Breakdown:    b.BuildBreakdown(),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.RoomID, response.RoomID)
		s.Equal("14:00:00", response.CheckInTime)
		s.Equal("200.00", response.PriceBreakdown.TotalPrice)
	})

	s.Run("error: 400 when dates are missing", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("checkOutDate", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 when room is unknown", func() {
		s.mockCommands.EXPECT().QuoteReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Room not found")
	})
}

func (s *ReservationHandlerTestSuite) TestListRooms() {
	weekday := decimal.RequireFromString("100")
	planID := uuid.New()
	items := []*queries.RoomListItem{
		{
			RoomView:     queries.RoomView{ID: uuid.New(), RoomNumber: "101", Hotel: "entoto", RatePlanID: &planID, Status: "available"},
			WeekdayPrice: &weekday,
		},
	}

	s.Run("success: weekend price is null when the plan has no row", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any(), nil).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/rooms/list", nil, "token")

		var response []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("100.00", response[0]["weekdayPrice"])
		s.Nil(response[0]["weekendPrice"])
		s.Equal("101", response[0]["roomNumber"])
	})
}

func (s *ReservationHandlerTestSuite) TestDebugPricing() {
	roomID := uuid.New()
	url := "/api/reservations/debug/pricing/" + roomID.String()

	s.Run("success: 200 OK", func() {
		s.mockQueries.EXPECT().DebugPricing(gomock.Any(), roomID).Return(&queries.PricingDebugView{
			Room:           queries.RoomView{ID: roomID, RoomNumber: "101", Hotel: "entoto"},
			Rates:          []*queries.RoomRateView{builder.NewRoomRateBuilder().BuildView()},
			LegacyBaseRate: decimal.RequireFromString("100"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.PricingDebugResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("100.00", response.LegacyBaseRate)
		s.Len(response.Rates, 1)
	})

	s.Run("error: 404 when room is unknown", func() {
		s.mockQueries.EXPECT().DebugPricing(gomock.Any(), roomID).Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
