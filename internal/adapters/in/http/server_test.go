package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apihttp "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/out/inmemory"
	"ordertrack/internal/core/application/services"
	"ordertrack/internal/core/domain/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	e        *echo.Echo
	clients  *services.ClientService
	products *services.ProductService
	orders   *services.OrderService
}

func newFixture() *fixture {
	uowFactory := inmemory.NewUnitOfWorkFactory(inmemory.NewDatabase())
	clients := services.NewClientService(uowFactory, validation.NewDefaultClientValidator(), nil)
	products := services.NewProductService(uowFactory, validation.NewDefaultProductValidator(), nil)
	orders := services.NewOrderService(uowFactory, nil)
	history := services.NewHistoryService(uowFactory)

	e := echo.New()
	apihttp.NewServer(clients, products, orders, history).RegisterRoutes(e)

	return &fixture{e: e, clients: clients, products: products, orders: orders}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestClientEndpoints(t *testing.T) {
	t.Run("should create a client", func(t *testing.T) {
		f := newFixture()

		rec := f.do(t, http.MethodPost, "/clients", apihttp.ClientRequest{
			Name: "Maria Silva",
			CPF:  "529.982.247-25",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeJSON[apihttp.ClientResponse](t, rec)
		assert.NotEmpty(t, body.ID)
		assert.Equal(t, "Maria Silva", body.Name)
		assert.Equal(t, "52998224725", body.CPF)
	})

	t.Run("should return 400 with violations for invalid input", func(t *testing.T) {
		f := newFixture()

		rec := f.do(t, http.MethodPost, "/clients", apihttp.ClientRequest{
			Name: "X",
			CPF:  "123",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeJSON[apihttp.ErrorResponse](t, rec)
		assert.Len(t, body.Violations, 2)
	})

	t.Run("should return 409 for a duplicate cpf", func(t *testing.T) {
		f := newFixture()

		first := f.do(t, http.MethodPost, "/clients", apihttp.ClientRequest{Name: "Maria Silva", CPF: "52998224725"})
		require.Equal(t, http.StatusCreated, first.Code)

		second := f.do(t, http.MethodPost, "/clients", apihttp.ClientRequest{Name: "Joao Souza", CPF: "52998224725"})
		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("should return 404 for an unknown client", func(t *testing.T) {
		f := newFixture()

		rec := f.do(t, http.MethodGet, "/clients/2b1a7c9e-0d3f-4a58-9c21-6f8e5b4d3a10", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 400 for a malformed id", func(t *testing.T) {
		f := newFixture()

		rec := f.do(t, http.MethodGet, "/clients/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should update and delete a client", func(t *testing.T) {
		f := newFixture()

		created := decodeJSON[apihttp.ClientResponse](t,
			f.do(t, http.MethodPost, "/clients", apihttp.ClientRequest{Name: "Maria Silva", CPF: "52998224725"}))

		updated := f.do(t, http.MethodPut, "/clients/"+created.ID, apihttp.ClientRequest{
			Name: "Maria Souza",
			CPF:  "52998224725",
		})
		require.Equal(t, http.StatusOK, updated.Code)
		assert.Equal(t, "Maria Souza", decodeJSON[apihttp.ClientResponse](t, updated).Name)

		deleted := f.do(t, http.MethodDelete, "/clients/"+created.ID, nil)
		assert.Equal(t, http.StatusNoContent, deleted.Code)

		gone := f.do(t, http.MethodGet, "/clients/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, gone.Code)
	})

	t.Run("should answer 204 when deleting an unknown client", func(t *testing.T) {
		f := newFixture()

		rec := f.do(t, http.MethodDelete, "/clients/2b1a7c9e-0d3f-4a58-9c21-6f8e5b4d3a10", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should list clients as a plain array without paging params", func(t *testing.T) {
		f := newFixture()
		f.do(t, http.MethodPost, "/clients", apihttp.ClientRequest{Name: "Maria Silva", CPF: "52998224725"})
		f.do(t, http.MethodPost, "/clients", apihttp.ClientRequest{Name: "Joao Souza", CPF: "11144477735"})

		rec := f.do(t, http.MethodGet, "/clients", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[[]apihttp.ClientResponse](t, rec)
		assert.Len(t, body, 2)
	})

	t.Run("should wrap paged listings in the envelope", func(t *testing.T) {
		f := newFixture()
		cpfs := []string{"52998224725", "11144477735", "12345678909"}
		for i, cpf := range cpfs {
			rec := f.do(t, http.MethodPost, "/clients", apihttp.ClientRequest{
				Name: fmt.Sprintf("Client Number %d", i),
				CPF:  cpf,
			})
			require.Equal(t, http.StatusCreated, rec.Code)
		}

		rec := f.do(t, http.MethodGet, "/clients?page=2&pageSize=2", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[apihttp.PagedResponse](t, rec)
		assert.Equal(t, 2, body.Page)
		assert.Equal(t, 2, body.PageSize)
		assert.Equal(t, int64(3), body.TotalCount)
		assert.Equal(t, 2, body.TotalPages)
		items, ok := body.Items.([]any)
		require.True(t, ok)
		assert.Len(t, items, 1)
	})
}

func TestProductEndpoints(t *testing.T) {
	t.Run("should create a product", func(t *testing.T) {
		f := newFixture()

		rec := f.do(t, http.MethodPost, "/products", apihttp.ProductRequest{
			Name:  "Espresso",
			Price: decimal.RequireFromString("10.50"),
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeJSON[apihttp.ProductResponse](t, rec)
		assert.Equal(t, "Espresso", body.Name)
		assert.True(t, body.Price.Equal(decimal.RequireFromString("10.50")))
	})

	t.Run("should reject a non positive price", func(t *testing.T) {
		f := newFixture()

		rec := f.do(t, http.MethodPost, "/products", apihttp.ProductRequest{
			Name:  "Espresso",
			Price: decimal.Zero,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderEndpoints(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, f *fixture) (clientID string, productID string) {
		t.Helper()

		c, err := f.clients.Create(ctx, "Maria Silva", "52998224725")
		require.NoError(t, err)
		p, err := f.products.Create(ctx, "Espresso", decimal.RequireFromString("10.50"))
		require.NoError(t, err)
		return c.ID().String(), p.ID().String()
	}

	t.Run("should create an order", func(t *testing.T) {
		f := newFixture()
		clientID, productID := seed(t, f)

		rec := f.do(t, http.MethodPost, "/orders", apihttp.OrderRequest{
			ClientID:   clientID,
			ProductIDs: []string{productID},
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeJSON[apihttp.OrderResponse](t, rec)
		assert.Equal(t, clientID, body.ClientID)
		assert.Equal(t, "Created", body.Status)
	})

	t.Run("should return 400 with violations for an empty product list", func(t *testing.T) {
		f := newFixture()
		clientID, _ := seed(t, f)

		rec := f.do(t, http.MethodPost, "/orders", apihttp.OrderRequest{
			ClientID:   clientID,
			ProductIDs: nil,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeJSON[apihttp.ErrorResponse](t, rec)
		assert.NotEmpty(t, body.Violations)
	})

	t.Run("should return 400 for a malformed product id", func(t *testing.T) {
		f := newFixture()
		clientID, _ := seed(t, f)

		rec := f.do(t, http.MethodPost, "/orders", apihttp.OrderRequest{
			ClientID:   clientID,
			ProductIDs: []string{"not-a-uuid"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should pay and cancel orders through the lifecycle routes", func(t *testing.T) {
		f := newFixture()
		clientID, productID := seed(t, f)

		created := decodeJSON[apihttp.OrderResponse](t,
			f.do(t, http.MethodPost, "/orders", apihttp.OrderRequest{ClientID: clientID, ProductIDs: []string{productID}}))

		paid := f.do(t, http.MethodPost, "/orders/"+created.ID+"/pay", nil)
		require.Equal(t, http.StatusOK, paid.Code)
		assert.Equal(t, "Paid", decodeJSON[apihttp.OrderResponse](t, paid).Status)

		canceled := f.do(t, http.MethodPost, "/orders/"+created.ID+"/cancel", nil)
		assert.Equal(t, http.StatusBadRequest, canceled.Code)
	})

	t.Run("should repeat a terminal transition without error", func(t *testing.T) {
		f := newFixture()
		clientID, productID := seed(t, f)

		created := decodeJSON[apihttp.OrderResponse](t,
			f.do(t, http.MethodPost, "/orders", apihttp.OrderRequest{ClientID: clientID, ProductIDs: []string{productID}}))

		require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/orders/"+created.ID+"/pay", nil).Code)
		again := f.do(t, http.MethodPost, "/orders/"+created.ID+"/pay", nil)
		assert.Equal(t, http.StatusOK, again.Code)
	})

	t.Run("should compute the order total", func(t *testing.T) {
		f := newFixture()
		clientID, productID := seed(t, f)

		created := decodeJSON[apihttp.OrderResponse](t,
			f.do(t, http.MethodPost, "/orders", apihttp.OrderRequest{
				ClientID:   clientID,
				ProductIDs: []string{productID, productID},
			}))

		rec := f.do(t, http.MethodGet, "/orders/"+created.ID+"/total", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[apihttp.TotalResponse](t, rec)
		assert.Equal(t, created.ID, body.OrderID)
		assert.True(t, body.Total.Equal(decimal.RequireFromString("21.00")))
	})

	t.Run("should list orders by status", func(t *testing.T) {
		f := newFixture()
		clientID, productID := seed(t, f)

		first := decodeJSON[apihttp.OrderResponse](t,
			f.do(t, http.MethodPost, "/orders", apihttp.OrderRequest{ClientID: clientID, ProductIDs: []string{productID}}))
		f.do(t, http.MethodPost, "/orders", apihttp.OrderRequest{ClientID: clientID, ProductIDs: []string{productID}})
		require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/orders/"+first.ID+"/pay", nil).Code)

		paid := f.do(t, http.MethodGet, "/orders/status/Paid", nil)
		require.Equal(t, http.StatusOK, paid.Code)
		assert.Len(t, decodeJSON[[]apihttp.OrderResponse](t, paid), 1)

		unknown := f.do(t, http.MethodGet, "/orders/status/Shipped", nil)
		assert.Equal(t, http.StatusBadRequest, unknown.Code)
	})
}

func TestHistoryEndpoint(t *testing.T) {
	t.Run("should list the audit trail newest first", func(t *testing.T) {
		f := newFixture()

		created := decodeJSON[apihttp.ClientResponse](t,
			f.do(t, http.MethodPost, "/clients", apihttp.ClientRequest{Name: "Maria Silva", CPF: "52998224725"}))
		require.Equal(t, http.StatusOK,
			f.do(t, http.MethodPut, "/clients/"+created.ID, apihttp.ClientRequest{Name: "Maria Souza", CPF: "52998224725"}).Code)

		rec := f.do(t, http.MethodGet, "/history", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		records := decodeJSON[[]apihttp.HistoryResponse](t, rec)
		require.Len(t, records, 2)
		assert.Equal(t, "Updated", records[0].Action)
		assert.Equal(t, "Created", records[1].Action)
		assert.Equal(t, created.ID, records[0].EntityID)
	})
}
