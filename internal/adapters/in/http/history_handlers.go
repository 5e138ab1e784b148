package http

import (
	"net/http"

	"ordertrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// ListHistory handles GET /history. Records come back newest first. With
// ?page or ?pageSize present the response is a PagedResponse envelope,
// otherwise a plain array.
func (s *Server) ListHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if page, pageSize, paged := paging(ctx); paged {
		page, pageSize = ports.NormalizePage(page, pageSize)
		records, total, err := s.history.GetPaged(reqCtx, page, pageSize)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, newPagedResponse(toHistoryResponses(records), page, pageSize, total))
	}

	records, err := s.history.GetAll(reqCtx)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toHistoryResponses(records))
}
