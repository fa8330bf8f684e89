//go:build e2e

package roompricing_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotel-management-api/internal/domain/user"
	"hotel-management-api/internal/handler/dto/response"
	"hotel-management-api/tests/common/authtest"
	"hotel-management-api/tests/common/builder"
	"hotel-management-api/tests/common/dbtest"
	"hotel-management-api/tests/common/httptest"
	"hotel-management-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ratesURL     = "/api/room-pricing"
	rateURL      = "/api/room-pricing/%s"
	planRatesURL = "/api/room-pricing/plan/%s"
)

type RoomPricingSuite struct {
	e2e.SharedSuite
	operator string
	viewer   string
}

func TestRoomPricingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomPricingSuite))
}

func (s *RoomPricingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.operator = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "pricing@example.com", string(user.RoleOperator))
	s.viewer = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "auditor@example.com", string(user.RoleViewer))
}

func (s *RoomPricingSuite) TestCreateRoomRate() {
	s.Run("Normal case: occupancy follows the plan", func() {
		t := s.T()

		planID := dbtest.CreateTestRatePlan(t, s.DB, "Family Suite", 4)
		req := builder.NewRoomRateBuilder().With(func(b *builder.RoomRateBuilder) {
			b.RatePlanID = planID
			b.Hotel = "laketana"
			b.Price = decimal.RequireFromString("220.5")
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ratesURL, req, s.operator)
		var got response.RoomRateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)

		expected := &response.RoomRateResponse{
			RatePlanID:   planID,
			RatePlanName: "Family Suite",
			Hotel:        "laketana",
			DayOfWeek:    "weekdays",
			Price:        "220.50",
			Occupancy:    4,
		}
		opts := []cmp.Option{cmpopts.IgnoreFields(response.RoomRateResponse{}, "ID", "CreatedAt", "UpdatedAt")}
		if diff := cmp.Diff(expected, &got, opts...); diff != "" {
			t.Errorf("room rate mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: duplicate plan, hotel and day class", func() {
		t := s.T()

		req := builder.NewRoomRateBuilder().With(func(b *builder.RoomRateBuilder) {
			b.RatePlanID = dbtest.SeedRatePlanID
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ratesURL, req, s.operator)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})

	s.Run("Error case: unknown plan", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ratesURL, builder.NewRoomRateBuilder().BuildRequestDTO(), s.operator)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Rate plan not found")
	})

	s.Run("Error case: viewers cannot change prices", func() {
		t := s.T()

		req := builder.NewRoomRateBuilder().With(func(b *builder.RoomRateBuilder) {
			b.RatePlanID = dbtest.SeedRatePlanID
			b.Hotel = "awashfall"
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ratesURL, req, s.viewer)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *RoomPricingSuite) TestUpdateAndDeleteRoomRate() {
	s.Run("Normal case: update changes the quoted price", func() {
		t := s.T()

		id := dbtest.CreateTestRoomRate(t, s.DB, dbtest.SeedRatePlanID, "bishoftu", "weekdays", "90.00")
		req := builder.NewRoomRateBuilder().With(func(b *builder.RoomRateBuilder) {
			b.RatePlanID = dbtest.SeedRatePlanID
			b.Hotel = "bishoftu"
			b.Price = decimal.RequireFromString("95")
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(rateURL, id), req, s.operator)
		var got response.RoomRateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "95.00", got.Price)
		require.Equal(t, id, got.ID)
	})

	s.Run("Normal case: delete then get is not found", func() {
		t := s.T()

		id := dbtest.CreateTestRoomRate(t, s.DB, dbtest.SeedRatePlanID, "africanVillage", "weekends", "300.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(rateURL, id), nil, s.operator)
		require.Equal(t, http.StatusNoContent, w.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rateURL, id), nil, s.viewer)
		httptest.AssertErrorResponse(t, gw, http.StatusNotFound, "Room rate not found")
	})

	s.Run("Error case: delete unknown row", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(rateURL, uuid.New()), nil, s.operator)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *RoomPricingSuite) TestListRoomRates() {
	s.Run("Normal case: filter by hotel and occupancy", func() {
		t := s.T()

		familyPlan := dbtest.CreateTestRatePlan(t, s.DB, "Family Suite", 4)
		dbtest.CreateTestRoomRate(t, s.DB, familyPlan, "entoto", "weekdays", "180.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ratesURL+"?hotel=entoto&occupancy=4", nil, s.viewer)
		var rates []response.RoomRateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rates)
		require.Len(t, rates, 1)
		require.Equal(t, "180.00", rates[0].Price)
	})

	s.Run("Normal case: by plan", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(planRatesURL, dbtest.SeedRatePlanID), nil, s.viewer)
		var rates []response.RoomRateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rates)
		require.Len(t, rates, 2)
	})

	s.Run("Error case: non-numeric occupancy", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ratesURL+"?occupancy=two", nil, s.viewer)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid occupancy")
	})
}
