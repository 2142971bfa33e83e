package api

import (
	"net/http"

	resdto "ticketera/internal/handler/dto/response"
	"ticketera/internal/handler/httperr"
	"ticketera/internal/handler/middleware"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	ticketQueries queries.TicketQueries
}

func NewTicketHandler(ticketQueries queries.TicketQueries) *TicketHandler {
	return &TicketHandler{ticketQueries: ticketQueries}
}

// @Summary My tickets
// @Description Tickets from the caller's paid orders, with QR credentials
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MyTicketResponse
// @Router /tickets/my [get]
func (h *TicketHandler) MyTickets(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	views, err := h.ticketQueries.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.MyTicketResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromTicketView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Validate ticket credential
// @Description Door-scan check of a signed ticket token
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param token path string true "Signed ticket token"
// @Success 200 {object} resdto.ScanResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tickets/validate/{token} [get]
func (h *TicketHandler) ValidateTicket(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.ticketQueries.ValidateCredential(c.Request.Context(), c.Param("token"), actorID, role)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidCredential):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid ticket credential", nil)
		case errs.Is(err, queries.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromScanView(view))
}
