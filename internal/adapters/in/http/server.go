package http

import (
	"net/http"
	"strconv"

	"ordertrack/internal/core/application/services"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server wires the application services to their REST routes.
type Server struct {
	clients  *services.ClientService
	products *services.ProductService
	orders   *services.OrderService
	history  *services.HistoryService
}

// NewServer creates a new HTTP server over the given services.
func NewServer(
	clients *services.ClientService,
	products *services.ProductService,
	orders *services.OrderService,
	history *services.HistoryService,
) *Server {
	return &Server{
		clients:  clients,
		products: products,
		orders:   orders,
		history:  history,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/clients", s.CreateClient)
	e.GET("/clients", s.ListClients)
	e.GET("/clients/:id", s.GetClient)
	e.PUT("/clients/:id", s.UpdateClient)
	e.DELETE("/clients/:id", s.DeleteClient)

	e.POST("/products", s.CreateProduct)
	e.GET("/products", s.ListProducts)
	e.GET("/products/:id", s.GetProduct)
	e.PUT("/products/:id", s.UpdateProduct)
	e.DELETE("/products/:id", s.DeleteProduct)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id", s.UpdateOrder)
	e.DELETE("/orders/:id", s.DeleteOrder)
	e.POST("/orders/:id/pay", s.PayOrder)
	e.POST("/orders/:id/cancel", s.CancelOrder)
	e.GET("/orders/:id/total", s.GetOrderTotal)
	e.GET("/orders/status/:status", s.ListOrdersByStatus)

	e.GET("/history", s.ListHistory)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// paging reports whether the request asked for a paged listing and returns
// the raw page parameters. Handlers normalize them before use.
func paging(ctx echo.Context) (page, pageSize int, paged bool) {
	rawPage := ctx.QueryParam("page")
	rawPageSize := ctx.QueryParam("pageSize")
	if rawPage == "" && rawPageSize == "" {
		return 0, 0, false
	}

	page, _ = strconv.Atoi(rawPage)
	pageSize, _ = strconv.Atoi(rawPageSize)
	return page, pageSize, true
}
