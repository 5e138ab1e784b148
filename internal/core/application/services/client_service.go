package services

import (
	"context"
	"errors"
	"log/slog"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/domain/model/client"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/validation"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// ClientService implements the client use cases: CRUD guarded by input
// validation and the CPF uniqueness rule, with every successful mutation
// recorded in the audit trail.
type ClientService struct {
	uowFactory ports.UnitOfWorkFactory
	validator  validation.Validator[validation.ClientInput]
	log        *slog.Logger
}

// NewClientService creates a ClientService. A nil logger falls back to the
// default slog logger.
func NewClientService(
	uowFactory ports.UnitOfWorkFactory,
	validator validation.Validator[validation.ClientInput],
	log *slog.Logger,
) *ClientService {
	if log == nil {
		log = slog.Default()
	}
	return &ClientService{uowFactory: uowFactory, validator: validator, log: log}
}

// Create validates the input, enforces CPF uniqueness and persists a new
// client together with its audit record.
func (s *ClientService) Create(ctx context.Context, name, cpf string) (*client.Client, error) {
	if result := s.validator.Validate(validation.ClientInput{Name: name, CPF: cpf}); !result.IsValid() {
		return nil, errs.NewValidationError("client", result.Errors())
	}

	cleanCPF := validation.CleanCPF(cpf)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taken, err := uow.ClientRepository().ExistsByCPF(ctx, cleanCPF, kernel.UUID{})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewValueIsNotUniqueError("cpf", cleanCPF)
	}

	c, err := client.NewClient(kernel.NewUUID(), name, cleanCPF)
	if err != nil {
		return nil, err
	}

	if err := uow.ClientRepository().Add(ctx, c); err != nil {
		return nil, err
	}
	if err := appendAudit(ctx, uow, c, audit.ActionCreated); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client created", "clientId", c.ID().String())
	return c, nil
}

// Get retrieves a client by id.
func (s *ClientService) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	return s.uowFactory.Create().ClientRepository().Get(ctx, id)
}

// GetAll retrieves every client in insertion order.
func (s *ClientService) GetAll(ctx context.Context) ([]*client.Client, error) {
	return s.uowFactory.Create().ClientRepository().GetAll(ctx)
}

// GetPaged retrieves one page of clients plus the total count.
func (s *ClientService) GetPaged(ctx context.Context, page, pageSize int) ([]*client.Client, int64, error) {
	return s.uowFactory.Create().ClientRepository().GetPaged(ctx, page, pageSize)
}

// Update validates the input, re-checks CPF uniqueness excluding the client
// itself and persists the change with its audit record.
func (s *ClientService) Update(ctx context.Context, id kernel.UUID, name, cpf string) (*client.Client, error) {
	if result := s.validator.Validate(validation.ClientInput{Name: name, CPF: cpf}); !result.IsValid() {
		return nil, errs.NewValidationError("client", result.Errors())
	}

	cleanCPF := validation.CleanCPF(cpf)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.ClientRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := uow.ClientRepository().ExistsByCPF(ctx, cleanCPF, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewValueIsNotUniqueError("cpf", cleanCPF)
	}

	if err := c.Edit(name, cleanCPF); err != nil {
		return nil, err
	}

	if err := uow.ClientRepository().Update(ctx, c); err != nil {
		return nil, err
	}
	if err := appendAudit(ctx, uow, c, audit.ActionUpdated); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client updated", "clientId", c.ID().String())
	return c, nil
}

// Delete removes a client and records the deletion. Deleting an absent id is
// a silent no-op with no audit entry.
func (s *ClientService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.ClientRepository().Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if err := uow.ClientRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := appendAudit(ctx, uow, c, audit.ActionDeleted); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "client deleted", "clientId", id.String())
	return nil
}

// appendAudit records a mutation inside the same unit of work, so the audit
// entry commits or rolls back together with the mutation.
func appendAudit(ctx context.Context, uow ports.UnitOfWork, entity audit.Auditable, action string) error {
	record, err := audit.NewRecord(entity, action)
	if err != nil {
		return err
	}
	return uow.AuditRepository().Add(ctx, record)
}
