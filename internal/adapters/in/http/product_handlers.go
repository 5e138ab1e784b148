package http

import (
	"net/http"

	"ordertrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CreateProduct handles POST /products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	p, err := s.products.Create(ctx.Request().Context(), req.Name, req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProductResponse(p))
}

// ListProducts handles GET /products. With ?page or ?pageSize present the
// response is a PagedResponse envelope, otherwise a plain array.
func (s *Server) ListProducts(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if page, pageSize, paged := paging(ctx); paged {
		page, pageSize = ports.NormalizePage(page, pageSize)
		products, total, err := s.products.GetPaged(reqCtx, page, pageSize)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, newPagedResponse(toProductResponses(products), page, pageSize, total))
	}

	products, err := s.products.GetAll(reqCtx)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// GetProduct handles GET /products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	p, err := s.products.Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(p))
}

// UpdateProduct handles PUT /products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	p, err := s.products.Update(ctx.Request().Context(), id, req.Name, req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(p))
}

// DeleteProduct handles DELETE /products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	if err := s.products.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
