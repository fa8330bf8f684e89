package api

import (
	"net/http"

	reqdto "hotel-management-api/internal/handler/dto/request"
	resdto "hotel-management-api/internal/handler/dto/response"
	"hotel-management-api/internal/handler/httperr"
	"hotel-management-api/internal/handler/middleware"
	"hotel-management-api/internal/pkg/errs"
	"hotel-management-api/internal/usecase/commands"
	"hotel-management-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Create a reservation and price it from the room's rate plan
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationWithPriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req.ToInput(), userID)
	if err != nil {
		h.abortWithWriteError(c, err)
		return
	}

	resp, err := resdto.FromReservationResult(result)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Update reservation
// @Description Replace a reservation's details and recompute its price
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationWithPriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid reservation id")
	if !ok {
		return
	}
	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.UpdateReservation(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.abortWithWriteError(c, err)
		return
	}

	resp, err := resdto.FromReservationResult(result)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel reservation
// @Description Soft-cancel a reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid reservation id")
	if !ok {
		return
	}
	if err := h.cmds.CancelReservation(c.Request.Context(), id); err != nil {
		if errs.Is(err, errs.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled successfully"})
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid reservation id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		abortInternal(c, err)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List reservations
// @Description Newest first, optionally for one hotel, with keyset pagination
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param hotel query string false "Hotel"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), optionalQuery(c, "hotel"), cursor, limit)
	if err != nil {
		if !abortWithCommonError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	list, err := resdto.FromReservationList(items)
	if err != nil {
		abortInternal(c, err)
		return
	}
	resp := gin.H{"reservations": list}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Quote reservation
// @Description Price a prospective stay without saving anything
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/quote [post]
func (h *ReservationHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.QuoteReservation(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortWithWriteError(c, err)
		return
	}
	resp, err := resdto.FromQuoteResult(result)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List rooms with prices
// @Description Rooms with their plan's weekday and weekend nightly price
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param hotel query string false "Hotel"
// @Success 200 {array} resdto.RoomListResponse
// @Router /api/reservations/rooms/list [get]
func (h *ReservationHandler) ListRooms(c *gin.Context) {
	items, err := h.q.ListRooms(c.Request.Context(), optionalQuery(c, "hotel"))
	if err != nil {
		if !abortWithCommonError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	resp, err := resdto.FromRoomList(items)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Debug room pricing
// @Description Room, its rate rows and the legacy flat base rate
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 200 {object} resdto.PricingDebugResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/debug/pricing/{roomId} [get]
func (h *ReservationHandler) DebugPricing(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId", "Invalid room id")
	if !ok {
		return
	}
	view, err := h.q.DebugPricing(c.Request.Context(), roomID)
	if err != nil {
		if errs.Is(err, errs.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		abortInternal(c, err)
		return
	}
	resp, err := resdto.FromPricingDebug(view)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) abortWithWriteError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Room not found", nil)
	case errs.Is(err, errs.ErrGuestNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Guest not found", nil)
	case abortWithCommonError(c, err):
	default:
		abortInternal(c, err)
	}
}
