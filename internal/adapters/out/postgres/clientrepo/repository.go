package clientrepo

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/client"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Add saves a new client to the database.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsNotUniqueErrorWithCause("client", aggregate.ID().String(), err)
		}
		return errs.NewStorageError("add client", err)
	}
	return nil
}

// Update saves an existing client to the database.
// Returns an ObjectNotFoundError when no client with that id exists.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ClientDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "cpf").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsNotUniqueErrorWithCause("cpf", aggregate.CPF(), result.Error)
		}
		return errs.NewStorageError("update client", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("clientId", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a client by id.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("clientId", id.String())
		}
		return nil, errs.NewStorageError("get client", err)
	}

	return toDomain(dto)
}

// GetAll retrieves every client in insertion order.
func (r *GormClientRepository) GetAll(ctx context.Context) ([]*client.Client, error) {
	var dtos []ClientDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("list clients", err)
	}

	return toDomainAll(dtos)
}

// GetPaged retrieves one page of clients in insertion order plus the total count.
func (r *GormClientRepository) GetPaged(ctx context.Context, page, pageSize int) ([]*client.Client, int64, error) {
	page, pageSize = ports.NormalizePage(page, pageSize)

	var total int64
	if err := r.db.WithContext(ctx).Model(&ClientDTO{}).Count(&total).Error; err != nil {
		return nil, 0, errs.NewStorageError("count clients", err)
	}

	var dtos []ClientDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, errs.NewStorageError("list clients", err)
	}

	clients, err := toDomainAll(dtos)
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

// Delete removes a client by id. Deleting an absent id is a no-op.
func (r *GormClientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&ClientDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return errs.NewStorageError("delete client", err)
	}
	return nil
}

// ExistsByCPF reports whether any client other than excludeID holds the given
// cleaned CPF.
func (r *GormClientRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID kernel.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("cpf = ?", cpf)
	if excludeID.Validate() == nil {
		query = query.Where("id <> ?", excludeID.Bytes())
	}
	if err := query.Count(&count).Error; err != nil {
		return false, errs.NewStorageError("check cpf uniqueness", err)
	}
	return count > 0, nil
}

// GetByCPF retrieves the client holding the given cleaned CPF.
func (r *GormClientRepository) GetByCPF(ctx context.Context, cpf string) (*client.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "cpf = ?", cpf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cpf", cpf)
		}
		return nil, errs.NewStorageError("get client by cpf", err)
	}

	return toDomain(dto)
}

func toDomainAll(dtos []ClientDTO) ([]*client.Client, error) {
	clients := make([]*client.Client, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}
