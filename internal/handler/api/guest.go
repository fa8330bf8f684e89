package api

import (
	"net/http"

	reqdto "hotel-management-api/internal/handler/dto/request"
	resdto "hotel-management-api/internal/handler/dto/response"
	"hotel-management-api/internal/handler/httperr"
	"hotel-management-api/internal/pkg/errs"
	"hotel-management-api/internal/usecase/commands"
	"hotel-management-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	cmds commands.GuestCommands
	q    queries.GuestQueries
}

func NewGuestHandler(cmds commands.GuestCommands, q queries.GuestQueries) *GuestHandler {
	return &GuestHandler{cmds: cmds, q: q}
}

// @Summary Register guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGuestRequest true "Guest"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/guests [post]
func (h *GuestHandler) Create(c *gin.Context) {
	var req reqdto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateGuest(c.Request.Context(), req.ToProfile())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDuplicateGuest):
			httperr.AbortWithError(c, http.StatusConflict, err, "Guest with this email already exists", nil)
		case abortWithCommonError(c, err):
		default:
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}

// @Summary Get guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} httperr.Response
// @Router /api/guests/{id} [get]
func (h *GuestHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid guest id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrGuestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Guest not found", nil)
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

// @Summary List guests
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.GuestResponse
// @Router /api/guests [get]
func (h *GuestHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	views, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		if !abortWithCommonError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	resp := gin.H{"guests": resdto.FromGuestList(views)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}
