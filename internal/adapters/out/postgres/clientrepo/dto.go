// Package clientrepo persists client aggregates in Postgres, handling the
// conversion between the domain model and its relational representation.
package clientrepo

import (
	"ordertrack/internal/core/domain/model/client"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting client aggregates.
// The CPF carries a unique index backing the uniqueness rule, and Seq orders
// listings by insertion.
type ClientDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	CPF  string `gorm:"column:cpf;type:varchar(11);uniqueIndex"`
	Seq  int64  `gorm:"autoIncrement;<-:false;index"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client domain aggregate to its database representation.
func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
		CPF:  c.CPF(),
	}
}

// toDomain converts a database DTO to a client domain aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.CPF)
}
