// Package http exposes the application services over a REST API built on
// echo. Handlers translate between JSON payloads and the domain, and map
// domain error kinds onto HTTP status codes.
package http

import (
	"encoding/json"
	"time"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/domain/model/client"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for every failed request.
// Violations carries the full rule list for validation failures.
type ErrorResponse struct {
	Code       int      `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

// PagedResponse is the envelope returned by paged listings.
type PagedResponse struct {
	Items      any   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

func newPagedResponse(items any, page, pageSize int, totalCount int64) PagedResponse {
	return PagedResponse{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: ports.TotalPages(totalCount, pageSize),
	}
}

// ClientRequest is the JSON body for creating or updating a client.
type ClientRequest struct {
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

// ClientResponse is the JSON representation of a client.
type ClientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

func toClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:   c.ID().String(),
		Name: c.Name(),
		CPF:  c.CPF(),
	}
}

func toClientResponses(clients []*client.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = toClientResponse(c)
	}
	return out
}

// ProductRequest is the JSON body for creating or updating a product.
// The price accepts both JSON numbers and strings.
type ProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductResponse is the JSON representation of a product.
type ProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func toProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID().String(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func toProductResponses(products []*product.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

// OrderRequest is the JSON body for creating or updating an order.
type OrderRequest struct {
	ClientID   string   `json:"clientId"`
	ProductIDs []string `json:"productIds"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clientId"`
	ProductIDs []string  `json:"productIds"`
	CreatedAt  time.Time `json:"createdAt"`
	Status     string    `json:"status"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID().String(),
		ClientID:   o.ClientID().String(),
		ProductIDs: kernel.UUIDsToStrings(o.ProductIDs()),
		CreatedAt:  o.CreatedAt(),
		Status:     o.Status().String(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

// TotalResponse is the JSON body returned by the order total endpoint.
type TotalResponse struct {
	OrderID string          `json:"orderId"`
	Total   decimal.Decimal `json:"total"`
}

// HistoryResponse is the JSON representation of one audit trail entry.
type HistoryResponse struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Action     string          `json:"action"`
	Snapshot   json.RawMessage `json:"snapshot"`
	RecordedAt time.Time       `json:"recordedAt"`
}

func toHistoryResponse(r *audit.Record) HistoryResponse {
	return HistoryResponse{
		ID:         r.ID().String(),
		EntityType: r.EntityType(),
		EntityID:   r.EntityID().String(),
		Action:     r.Action(),
		Snapshot:   json.RawMessage(r.Snapshot()),
		RecordedAt: r.RecordedAt(),
	}
}

func toHistoryResponses(records []*audit.Record) []HistoryResponse {
	out := make([]HistoryResponse, len(records))
	for i, r := range records {
		out[i] = toHistoryResponse(r)
	}
	return out
}
