package inmemory

import (
	"context"

	"ordertrack/internal/core/domain/model/client"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

// ClientRepository is the in-memory implementation of ports.ClientRepository.
type ClientRepository struct {
	repo[*client.Client]
}

func newClientRepository(store *store[*client.Client]) *ClientRepository {
	return &ClientRepository{repo[*client.Client]{
		store:     store,
		paramName: "clientId",
		id:        func(c *client.Client) kernel.UUID { return c.ID() },
		validate:  func(c *client.Client) error { return c.Validate() },
		clone: func(c *client.Client) (*client.Client, error) {
			return client.RestoreClient(c.ID(), c.Name(), c.CPF())
		},
	}}
}

// ExistsByCPF reports whether any client other than excludeID holds the given
// cleaned CPF.
func (r *ClientRepository) ExistsByCPF(_ context.Context, cpf string, excludeID kernel.UUID) (bool, error) {
	matches := r.store.find(func(c *client.Client) bool {
		return c.CPF() == cpf && !c.ID().IsEqual(excludeID)
	})
	return len(matches) > 0, nil
}

// GetByCPF retrieves the client holding the given cleaned CPF.
func (r *ClientRepository) GetByCPF(_ context.Context, cpf string) (*client.Client, error) {
	matches := r.store.find(func(c *client.Client) bool { return c.CPF() == cpf })
	if len(matches) == 0 {
		return nil, errs.NewObjectNotFoundError("cpf", cpf)
	}
	return r.clone(matches[0])
}
