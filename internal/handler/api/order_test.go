//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ticketera/internal/domain/order"
	"ticketera/internal/handler/api"
	resdto "ticketera/internal/handler/dto/response"
	"ticketera/internal/pkg/identity"
	"ticketera/internal/usecase/commands"
	"ticketera/internal/usecase/queries"
	"ticketera/tests/common/builder"
	"ticketera/tests/common/httptest"
	"ticketera/tests/common/testutil"
	commandsmock "ticketera/tests/mock/commands"
	queriesmock "ticketera/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockOrderCommands
	mockOrderQueries *queriesmock.MockOrderQueries
	mockPromoQueries *queriesmock.MockPromoQueries
	handler          *api.OrderHandler

	producerID uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockOrderQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockPromoQueries = queriesmock.NewMockPromoQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockOrderQueries, s.mockPromoQueries)

	s.producerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.producerID)
		c.Set("user_role", identity.RoleProducer)
		c.Next()
	}

	// Guest checkout: an order can be created without credentials.
	s.router.POST("/orders", s.handler.CreateOrder)
	s.router.POST("/orders/validate-promo", s.handler.ValidatePromo)
	s.router.POST("/orders/webhook/payment", s.handler.PaymentWebhook)
	s.router.POST("/orders/:id/payment-link", s.handler.RequestPaymentLink)
	s.router.GET("/orders/pending", authMiddleware, s.handler.ListPendingOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
	s.router.POST("/orders/:id/approve", authMiddleware, s.handler.ApproveOrder)
	s.router.POST("/orders/:id/reject", authMiddleware, s.handler.RejectOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

type testCaseOrder struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func buildCreateResult(b *builder.OrderBuilder) *commands.CreateOrderResult {
	o := b.BuildOrder(order.StatusPending)
	link := "https://pay.example.com/checkout?pref_id=abc"
	return &commands.CreateOrderResult{
		Order:       o,
		Quote:       b.BuildQuote(),
		Tickets:     []commands.TicketArtifact{{Ticket: b.BuildTicket(nil)}, {Ticket: b.BuildTicket(nil)}},
		PaymentLink: &link,
	}
}

// ================================================================================
// TestCreateOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	url := "/orders"
	b := builder.NewOrderBuilder()
	reqBody := b.BuildCreateRequestDTO()

	validation := []testCaseOrder{
		{name: "missing field: items", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
		{name: "empty items", mutate: testutil.Field("items", []any{}), expectCode: http.StatusBadRequest},
		{name: "missing field: payment_method", mutate: testutil.Field("payment_method", nil), expectCode: http.StatusBadRequest},
		{name: "invalid customer email", mutate: testutil.Field("customer", map[string]any{"email": "not-an-email"}), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with pricing and tickets", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(buildCreateResult(b), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("PENDING", body.Status)
		s.Equal(int64(115_00), body.Pricing.TotalCents)
		s.Len(body.Tickets, 2)
		s.NotNil(body.PaymentLink)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 409 Conflict when sold out", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSoldOut).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough tickets")
	})

	s.Run("error: 409 Conflict when a seat is taken", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSeatTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "seats are taken")
	})

	s.Run("error: 409 Conflict when lock contention exhausts retries", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReservationConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "please retry")
	})

	s.Run("error: 400 Bad Request on seat selection mismatch", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSeatMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Seat selection")
	})

	s.Run("error: 404 Not Found for unknown batch", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBatchNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Batch not found")
	})
}

// ================================================================================
// TestGetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String()

	s.Run("success: returns 200 OK with the order view", func() {
		view := &queries.OrderView{ID: orderID, Status: "PAID", TotalCents: 115_00}
		s.mockOrderQueries.EXPECT().
			GetByID(gomock.Any(), s.producerID, identity.RoleProducer, orderID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body queries.OrderView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(orderID, body.ID)
	})

	s.Run("error: 401 Unauthorized without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 Not Found for foreign order", func() {
		s.mockOrderQueries.EXPECT().
			GetByID(gomock.Any(), s.producerID, identity.RoleProducer, orderID).
			Return(nil, queries.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID")
	})
}

// ================================================================================
// TestApproveOrder / TestRejectOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestApproveOrder() {
	b := builder.NewOrderBuilder()
	url := "/orders/" + b.OrderID.String() + "/approve"

	s.Run("success: returns 200 OK with PAID status", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), b.OrderID, s.producerID).
			Return(b.BuildOrder(order.StatusPaid), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.OrderStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PAID", body.Status)
	})

	s.Run("error: 403 Forbidden for foreign producer", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), b.OrderID, s.producerID).
			Return(nil, commands.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not authorized")
	})

	s.Run("error: 409 Conflict for an order not awaiting approval", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), b.OrderID, s.producerID).
			Return(nil, commands.ErrInvalidOrderState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *OrderHandlerTestSuite) TestRejectOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/reject"

	s.Run("success: returns 200 OK with REJECTED status", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), orderID, s.producerID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.OrderStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("REJECTED", body.Status)
	})

	s.Run("error: 404 Not Found for unknown order", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), orderID, s.producerID).
			Return(commands.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

// ================================================================================
// TestListPendingOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestListPendingOrders() {
	url := "/orders/pending"

	s.Run("success: returns 200 OK with the pending list", func() {
		items := []*queries.PendingOrderListItem{{ID: uuid.New(), CustomerName: "Ada Lovelace", TicketCount: 2}}
		s.mockOrderQueries.EXPECT().ListPendingForProducer(gomock.Any(), s.producerID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []queries.PendingOrderListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: empty list serializes as an array", func() {
		s.mockOrderQueries.EXPECT().ListPendingForProducer(gomock.Any(), s.producerID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

// ================================================================================
// TestPaymentWebhook
// ================================================================================

func (s *OrderHandlerTestSuite) TestPaymentWebhook() {
	url := "/orders/webhook/payment"
	reqBody := map[string]any{"id": "payment-123", "status": "approved"}

	s.Run("success: returns 200 OK when the order is confirmed", func() {
		s.mockCommands.EXPECT().HandlePaymentWebhook(gomock.Any(), "payment-123", "approved").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ok", body["status"])
	})

	s.Run("success: unknown payment ref is acknowledged, not retried", func() {
		s.mockCommands.EXPECT().HandlePaymentWebhook(gomock.Any(), "payment-123", "approved").
			Return(commands.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ignored", body["status"])
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"id": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestValidatePromo
// ================================================================================

func (s *OrderHandlerTestSuite) TestValidatePromo() {
	url := "/orders/validate-promo"
	reqBody := map[string]any{"code": "SUMMER10"}

	s.Run("success: returns 200 OK with the discount", func() {
		view := &queries.PromoView{Code: "SUMMER10", DiscountBp: 1000, DiscountPercent: 10}
		s.mockPromoQueries.EXPECT().Validate(gomock.Any(), "SUMMER10").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.PromoResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SUMMER10", body.Code)
		s.InDelta(10.0, body.DiscountPercent, 0.001)
	})

	s.Run("error: 404 Not Found for unknown code", func() {
		s.mockPromoQueries.EXPECT().Validate(gomock.Any(), "SUMMER10").
			Return(nil, queries.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Promo code not found")
	})

	s.Run("error: 400 Bad Request for expired code", func() {
		s.mockPromoQueries.EXPECT().Validate(gomock.Any(), "SUMMER10").
			Return(nil, queries.ErrPromoInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or expired")
	})
}

// ================================================================================
// TestRequestPaymentLink
// ================================================================================

func (s *OrderHandlerTestSuite) TestRequestPaymentLink() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/payment-link"

	s.Run("success: returns 200 OK with a fresh link", func() {
		s.mockCommands.EXPECT().RequestPaymentLink(gomock.Any(), orderID).
			Return(&commands.PaymentLink{URL: "https://pay.example.com/z", PaymentID: "z"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.PaymentLinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("z", body.PaymentID)
	})

	s.Run("error: 409 Conflict for a non-pending order", func() {
		s.mockCommands.EXPECT().RequestPaymentLink(gomock.Any(), orderID).
			Return(nil, commands.ErrInvalidOrderState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
