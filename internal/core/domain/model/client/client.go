package client

import (
	"errors"
	"strings"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/validation"
	"ordertrack/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not created
// through the NewClient or RestoreClient factory methods.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

// Client is the aggregate root for a customer.
//
// The aggregate keeps structural invariants only: a valid id, a non-empty
// trimmed name and an eleven-digit cleaned CPF. Business validation (length
// bounds, CPF checksum) runs in the validation framework before construction,
// and CPF uniqueness is checked by the client service against storage.
type Client struct {
	id   kernel.UUID
	name string
	cpf  string

	isConstructed bool
}

// NewClient creates a new Client. The name is trimmed and the CPF is cleaned
// to digits before being stored.
func NewClient(id kernel.UUID, name string, cpf string) (*Client, error) {
	client := &Client{isConstructed: true}

	if err := errors.Join(
		client.setID(id),
		client.setName(name),
		client.setCPF(cpf),
	); err != nil {
		return nil, err
	}

	return client, nil
}

// RestoreClient reconstructs a Client from persistence.
func RestoreClient(id kernel.UUID, name string, cpf string) (*Client, error) {
	return NewClient(id, name, cpf)
}

// Validate ensures the Client instance was properly constructed through a
// factory method.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's trimmed display name.
func (c *Client) Name() string {
	return c.name
}

// CPF returns the cleaned, digits-only CPF.
func (c *Client) CPF() string {
	return c.cpf
}

// Edit replaces the client's name and CPF. The identity is untouched.
// The client is unchanged if any new value is invalid.
func (c *Client) Edit(name string, cpf string) error {
	edited := *c
	if err := errors.Join(
		edited.setName(name),
		edited.setCPF(cpf),
	); err != nil {
		return err
	}

	*c = edited
	return nil
}

// AuditID returns the identity recorded in audit entries for this client.
func (c *Client) AuditID() kernel.UUID {
	return c.id
}

// AuditEntityType returns the entity type name recorded in audit entries.
func (c *Client) AuditEntityType() string {
	return "Client"
}

// AuditSnapshot returns a serializable point-in-time view of the client.
func (c *Client) AuditSnapshot() any {
	return clientSnapshot{
		ID:   c.id.String(),
		Name: c.name,
		CPF:  c.cpf,
	}
}

// clientSnapshot is the JSON shape stored in audit records.
type clientSnapshot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = trimmed
	return nil
}

func (c *Client) setCPF(cpf string) error {
	clean := validation.CleanCPF(cpf)
	if len(clean) != 11 {
		return errs.NewValueIsInvalidError("cpf")
	}
	c.cpf = clean
	return nil
}
