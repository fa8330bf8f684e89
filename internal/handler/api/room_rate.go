package api

import (
	"net/http"
	"strconv"

	reqdto "hotel-management-api/internal/handler/dto/request"
	resdto "hotel-management-api/internal/handler/dto/response"
	"hotel-management-api/internal/handler/httperr"
	"hotel-management-api/internal/pkg/errs"
	"hotel-management-api/internal/usecase/commands"
	"hotel-management-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomRateHandler struct {
	cmds commands.RoomRateCommands
	q    queries.RoomRateQueries
}

func NewRoomRateHandler(cmds commands.RoomRateCommands, q queries.RoomRateQueries) *RoomRateHandler {
	return &RoomRateHandler{cmds: cmds, q: q}
}

// @Summary List room rates
// @Tags room-pricing
// @Produce json
// @Security BearerAuth
// @Param hotel query string false "Hotel"
// @Param occupancy query int false "Minimum rate plan occupancy"
// @Success 200 {array} resdto.RoomRateResponse
// @Failure 400 {object} httperr.Response
// @Router /api/room-pricing [get]
func (h *RoomRateHandler) List(c *gin.Context) {
	filter := queries.RoomRateFilter{Hotel: optionalQuery(c, "hotel")}
	if v := c.Query("occupancy"); v != "" {
		occ, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid occupancy", nil)
			return
		}
		filter.Occupancy = &occ
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		if !abortWithCommonError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	respondRoomRates(c, views)
}

// @Summary Get room rate
// @Tags room-pricing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room rate ID"
// @Success 200 {object} resdto.RoomRateResponse
// @Failure 404 {object} httperr.Response
// @Router /api/room-pricing/{id} [get]
func (h *RoomRateHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid room rate id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	respondRoomRate(c, http.StatusOK, view)
}

// @Summary List rates of a rate plan
// @Tags room-pricing
// @Produce json
// @Security BearerAuth
// @Param ratePlanId path string true "Rate plan ID"
// @Success 200 {array} resdto.RoomRateResponse
// @Router /api/room-pricing/plan/{ratePlanId} [get]
func (h *RoomRateHandler) ListByPlan(c *gin.Context) {
	planID, ok := parseIDParam(c, "ratePlanId", "Invalid rate plan id")
	if !ok {
		return
	}
	views, err := h.q.ListByPlan(c.Request.Context(), planID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	respondRoomRates(c, views)
}

// @Summary Create room rate
// @Tags room-pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomRateRequest true "Room rate"
// @Success 201 {object} resdto.RoomRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/room-pricing [post]
func (h *RoomRateHandler) Create(c *gin.Context) {
	var req reqdto.RoomRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateRoomRate(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	respondRoomRate(c, http.StatusCreated, view)
}

// @Summary Update room rate
// @Tags room-pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room rate ID"
// @Param request body reqdto.RoomRateRequest true "Room rate"
// @Success 200 {object} resdto.RoomRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/room-pricing/{id} [put]
func (h *RoomRateHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid room rate id")
	if !ok {
		return
	}
	var req reqdto.RoomRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateRoomRate(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	respondRoomRate(c, http.StatusOK, view)
}

// @Summary Delete room rate
// @Tags room-pricing
// @Security BearerAuth
// @Param id path string true "Room rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/room-pricing/{id} [delete]
func (h *RoomRateHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid room rate id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteRoomRate(c.Request.Context(), id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomRateHandler) abortWithError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrRoomRateNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room rate not found", nil)
	case errs.Is(err, errs.ErrRatePlanNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Rate plan not found", nil)
	case errs.Is(err, errs.ErrDuplicateRoomRate):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room rate already exists for this plan, hotel and day class", nil)
	case abortWithCommonError(c, err):
	default:
		abortInternal(c, err)
	}
}

func respondRoomRate(c *gin.Context, status int, view *queries.RoomRateView) {
	resp, err := resdto.FromRoomRateView(view)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(status, resp)
}

func respondRoomRates(c *gin.Context, views []*queries.RoomRateView) {
	resp, err := resdto.FromRoomRateList(views)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
