package http

import (
	"net/http"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, productIDs, err := parseOrderRequest(req)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.orders.Create(ctx.Request().Context(), clientID, productIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// ListOrders handles GET /orders. With ?page or ?pageSize present the
// response is a PagedResponse envelope, otherwise a plain array.
func (s *Server) ListOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if page, pageSize, paged := paging(ctx); paged {
		page, pageSize = ports.NormalizePage(page, pageSize)
		orders, total, err := s.orders.GetPaged(reqCtx, page, pageSize)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, newPagedResponse(toOrderResponses(orders), page, pageSize, total))
	}

	orders, err := s.orders.GetAll(reqCtx)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	o, err := s.orders.Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// UpdateOrder handles PUT /orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, productIDs, err := parseOrderRequest(req)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.orders.Update(ctx.Request().Context(), id, clientID, productIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	if err := s.orders.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles POST /orders/:id/pay.
func (s *Server) PayOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	o, err := s.orders.Pay(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// CancelOrder handles POST /orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	o, err := s.orders.Cancel(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// GetOrderTotal handles GET /orders/:id/total.
func (s *Server) GetOrderTotal(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	total, err := s.orders.GetTotal(ctx.Request().Context(), id, nil)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TotalResponse{
		OrderID: id.String(),
		Total:   total,
	})
}

// ListOrdersByStatus handles GET /orders/status/:status.
func (s *Server) ListOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.orders.GetByStatus(ctx.Request().Context(), status)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

func parseOrderRequest(req OrderRequest) (kernel.UUID, []kernel.UUID, error) {
	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return kernel.UUID{}, nil, err
	}

	productIDs, err := kernel.UUIDsFromStrings(req.ProductIDs)
	if err != nil {
		return kernel.UUID{}, nil, err
	}

	return clientID, productIDs, nil
}
