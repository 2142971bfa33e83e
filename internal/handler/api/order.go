package api

import (
	"net/http"

	reqdto "ticketera/internal/handler/dto/request"
	resdto "ticketera/internal/handler/dto/response"
	"ticketera/internal/handler/httperr"
	"ticketera/internal/handler/middleware"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/usecase/commands"
	"ticketera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
	promoQueries  queries.PromoQueries
}

func NewOrderHandler(
	orderCommands commands.OrderCommands,
	orderQueries queries.OrderQueries,
	promoQueries queries.PromoQueries,
) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
		promoQueries:  promoQueries,
	}
}

// @Summary Create order
// @Description Reserve tickets, apply an optional promo code and create the order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	// Guest checkout: the order is created without a user when no valid
	// token accompanied the request.
	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.orderCommands.CreateOrder(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBatchNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Batch not found", nil)
		case errs.Is(err, commands.ErrSeatNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Seat not found", nil)
		case errs.Is(err, commands.ErrPromoNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
		case errs.Is(err, commands.ErrSoldOut):
			httperr.AbortWithError(c, http.StatusConflict, err, "Not enough tickets remaining", nil)
		case errs.Is(err, commands.ErrManuallyClosed), errs.Is(err, commands.ErrSalesClosed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Sales are closed for this batch", nil)
		case errs.Is(err, commands.ErrSeatTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "One or more selected seats are taken", nil)
		case errs.Is(err, commands.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is contended, please retry", nil)
		case errs.Is(err, commands.ErrSeatMismatch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Seat selection does not match quantity", nil)
		case errs.Is(err, commands.ErrInvalidPromo):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired promo code", nil)
		case errs.Is(err, commands.ErrEmptyOrder):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order must contain at least one item", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateOrderResult(result))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.orderQueries.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Approve offline-payment order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/approve [post]
func (h *OrderHandler) ApproveOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}
	approverID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	approved, err := h.orderCommands.Approve(c.Request.Context(), id, approverID)
	if err != nil {
		h.respondApprovalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OrderStatusResponse{
		ID:     approved.ID(),
		Status: approved.Status().String(),
	})
}

// @Summary Reject offline-payment order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/reject [post]
func (h *OrderHandler) RejectOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}
	approverID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	if err := h.orderCommands.Reject(c.Request.Context(), id, approverID); err != nil {
		h.respondApprovalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OrderStatusResponse{ID: id, Status: "REJECTED"})
}

func (h *OrderHandler) respondApprovalError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errs.Is(err, commands.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not authorized for this order", nil)
	case errs.Is(err, commands.ErrInvalidOrderState):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order state does not allow this operation", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary List orders awaiting approval
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PendingOrderListItem
// @Router /orders/pending [get]
func (h *OrderHandler) ListPendingOrders(c *gin.Context) {
	producerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	list, err := h.orderQueries.ListPendingForProducer(c.Request.Context(), producerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if list == nil {
		list = []*queries.PendingOrderListItem{}
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Request a new payment link
// @Description Retry payment link generation for a PENDING order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.PaymentLinkResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/payment-link [post]
func (h *OrderHandler) RequestPaymentLink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	link, err := h.orderCommands.RequestPaymentLink(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errs.Is(err, commands.ErrInvalidOrderState):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order is not awaiting payment", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PaymentLinkResponse{
		PaymentLink: link.URL,
		PaymentID:   link.PaymentID,
	})
}

// @Summary Payment provider webhook
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Webhook body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /orders/webhook/payment [post]
func (h *OrderHandler) PaymentWebhook(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.orderCommands.HandlePaymentWebhook(c.Request.Context(), req.ID, req.Status); err != nil {
		switch {
		case errs.Is(err, commands.ErrOrderNotFound):
			// Acknowledge unknown refs; a retry will never resolve them.
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Validate promo code
// @Description Read-only promo pre-check before checkout
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Promo code"
// @Success 200 {object} resdto.PromoResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/validate-promo [post]
func (h *OrderHandler) ValidatePromo(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.promoQueries.Validate(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
		case errs.Is(err, queries.ErrPromoInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired promo code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoView(view))
}
