package http

import (
	"net/http"

	"ordertrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CreateClient handles POST /clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	c, err := s.clients.Create(ctx.Request().Context(), req.Name, req.CPF)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toClientResponse(c))
}

// ListClients handles GET /clients. With ?page or ?pageSize present the
// response is a PagedResponse envelope, otherwise a plain array.
func (s *Server) ListClients(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if page, pageSize, paged := paging(ctx); paged {
		page, pageSize = ports.NormalizePage(page, pageSize)
		clients, total, err := s.clients.GetPaged(reqCtx, page, pageSize)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, newPagedResponse(toClientResponses(clients), page, pageSize, total))
	}

	clients, err := s.clients.GetAll(reqCtx)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toClientResponses(clients))
}

// GetClient handles GET /clients/:id.
func (s *Server) GetClient(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	c, err := s.clients.Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toClientResponse(c))
}

// UpdateClient handles PUT /clients/:id.
func (s *Server) UpdateClient(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	var req ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	c, err := s.clients.Update(ctx.Request().Context(), id, req.Name, req.CPF)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toClientResponse(c))
}

// DeleteClient handles DELETE /clients/:id.
func (s *Server) DeleteClient(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	if err := s.clients.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
