package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ticketera/internal/handler/api"
	"ticketera/internal/handler/middleware"
	"ticketera/internal/pkg/config"
	"ticketera/internal/pkg/identity"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, orderHandler *api.OrderHandler, ticketHandler *api.TicketHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, orderHandler, ticketHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, orderHandler *api.OrderHandler, ticketHandler *api.TicketHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		orders := apiGroup.Group("/orders")
		{
			// Checkout and promo preview accept guests; a valid token just
			// attaches the order to the user.
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.CreateOrder,
					Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodPost, Path: "/validate-promo", Handler: orderHandler.ValidatePromo},
				{Method: http.MethodPost, Path: "/webhook/payment", Handler: orderHandler.PaymentWebhook},
				{Method: http.MethodPost, Path: "/:id/payment-link", Handler: orderHandler.RequestPaymentLink},
			})

			authRequired := orders.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/pending", Handler: orderHandler.ListPendingOrders,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(identity.RoleProducer)}},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: orderHandler.ApproveOrder,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(identity.RoleProducer)}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: orderHandler.RejectOrder,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(identity.RoleProducer)}},
			})
		}

		tickets := apiGroup.Group("/tickets")
		tickets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tickets, []route{
				{Method: http.MethodGet, Path: "/my", Handler: ticketHandler.MyTickets},
				{Method: http.MethodGet, Path: "/validate/:token", Handler: ticketHandler.ValidateTicket,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(identity.RoleProducer)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
