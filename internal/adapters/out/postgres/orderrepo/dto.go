// Package orderrepo persists order aggregates in Postgres, handling the
// conversion between the domain model and its relational representation.
package orderrepo

import (
	"encoding/json"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The product reference sequence is stored as a jsonb array of UUID strings,
// preserving both order and duplicates. Version backs optimistic concurrency.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID   uuid.UUID `gorm:"type:uuid;index"`
	ProductIDs string    `gorm:"type:jsonb"`
	CreatedAt  time.Time
	Status     int `gorm:"index"`
	Version    int
	Seq        int64 `gorm:"autoIncrement;<-:false;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) (OrderDTO, error) {
	raw, err := json.Marshal(kernel.UUIDsToStrings(o.ProductIDs()))
	if err != nil {
		return OrderDTO{}, errs.NewValueIsInvalidErrorWithCause("productIds", err)
	}

	return OrderDTO{
		ID:         o.ID().Bytes(),
		ClientID:   o.ClientID().Bytes(),
		ProductIDs: string(raw),
		CreatedAt:  o.CreatedAt(),
		Status:     int(o.Status()),
		Version:    o.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var rawProductIDs []string
	if err := json.Unmarshal([]byte(dto.ProductIDs), &rawProductIDs); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("productIds", err)
	}

	productIDs, err := kernel.UUIDsFromStrings(rawProductIDs)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, clientID, productIDs, dto.CreatedAt, order.Status(dto.Status), dto.Version)
}
