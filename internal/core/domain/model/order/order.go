package order

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoProducts is returned when an order would end up with an empty
	// product reference sequence, at creation or at edit time.
	ErrOrderHasNoProducts = errors.New("order must contain at least one product")
)

// PriceResolver resolves a product reference to its current price.
// It is a pure foreign lookup supplied by the caller; the order does not own
// product data.
type PriceResolver func(productID kernel.UUID) decimal.Decimal

// Order is the aggregate root for the order lifecycle.
//
// Invariants:
//   - Must have a valid unique identifier and client reference
//   - Must reference at least one product at creation and after every edit
//   - The creation timestamp is immutable
//   - Status transitions follow the lifecycle state machine in Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The version counter supports optimistic concurrency: repositories refuse an
// update whose version does not match the stored row, so two conflicting
// transitions read from the same snapshot cannot both win.
type Order struct {
	id         kernel.UUID
	clientID   kernel.UUID
	productIDs []kernel.UUID
	createdAt  time.Time
	status     Status
	version    int

	isConstructed bool
}

// NewOrder creates a new Order in Created status with the creation timestamp
// set to the current UTC time and version 1.
//
// The client reference is validated for shape only, never for existence in
// client storage. Product references may repeat; each occurrence counts once
// toward the total.
func NewOrder(id kernel.UUID, clientID kernel.UUID, productIDs []kernel.UUID) (*Order, error) {
	order := &Order{
		createdAt:     time.Now().UTC(),
		status:        Created,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setProductIDs(productIDs),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. All fields, including
// status, creation time and version, come from the stored representation.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	productIDs []kernel.UUID,
	createdAt time.Time,
	status Status,
	version int,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setProductIDs(productIDs),
		order.setStatus(status),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the client reference.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// ProductIDs returns a copy of the ordered product reference sequence.
// Duplicates are preserved; they represent quantity by repetition.
func (o *Order) ProductIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(o.productIDs))
	copy(out, o.productIDs)
	return out
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic concurrency version of the loaded snapshot.
func (o *Order) Version() int {
	return o.version
}

// AdvanceVersion aligns the aggregate with a storage write that persisted the
// next version. Repositories call it after a successful compare-and-swap, so
// the in-memory copy and its audit snapshot match the stored row.
func (o *Order) AdvanceVersion() {
	o.version++
}

// Edit replaces the client reference and the product reference sequence.
// The status and creation timestamp are untouched.
//
// Returns an error if the new product sequence is empty or any reference
// is invalid; the order is unchanged in that case.
func (o *Order) Edit(clientID kernel.UUID, productIDs []kernel.UUID) error {
	edited := *o
	if err := errors.Join(
		edited.setClientID(clientID),
		edited.setProductIDs(productIDs),
	); err != nil {
		return err
	}

	*o = edited
	return nil
}

// Pay transitions the order to Paid.
//
// Returns:
//   - (true, nil) when the order moved from Created to Paid
//   - (false, nil) when the order was already Paid (idempotent no-op)
//   - (false, error) when the order is Canceled
func (o *Order) Pay() (bool, error) {
	newStatus, err := o.status.Pay()
	if err != nil {
		return false, err
	}

	changed := newStatus != o.status
	o.status = newStatus
	return changed, nil
}

// Cancel transitions the order to Canceled.
//
// Returns:
//   - (true, nil) when the order moved from Created to Canceled
//   - (false, nil) when the order was already Canceled (idempotent no-op)
//   - (false, error) when the order is Paid
func (o *Order) Cancel() (bool, error) {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return false, err
	}

	changed := newStatus != o.status
	o.status = newStatus
	return changed, nil
}

// Total derives the order total by summing the resolved price of every
// product reference. A reference that repeats contributes once per
// occurrence. The total is never stored.
func (o *Order) Total(resolve PriceResolver) decimal.Decimal {
	total := decimal.Zero
	for _, productID := range o.productIDs {
		total = total.Add(resolve(productID))
	}
	return total
}

// AuditID returns the identity recorded in audit entries for this order.
func (o *Order) AuditID() kernel.UUID {
	return o.id
}

// AuditEntityType returns the entity type name recorded in audit entries.
func (o *Order) AuditEntityType() string {
	return "Order"
}

// AuditSnapshot returns a serializable point-in-time view of the order.
func (o *Order) AuditSnapshot() any {
	productIDs := make([]string, len(o.productIDs))
	for i, id := range o.productIDs {
		productIDs[i] = id.String()
	}

	return orderSnapshot{
		ID:         o.id.String(),
		ClientID:   o.clientID.String(),
		ProductIDs: productIDs,
		CreatedAt:  o.createdAt,
		Status:     o.status.String(),
		Version:    o.version,
	}
}

// orderSnapshot is the JSON shape stored in audit records.
type orderSnapshot struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clientId"`
	ProductIDs []string  `json:"productIds"`
	CreatedAt  time.Time `json:"createdAt"`
	Status     string    `json:"status"`
	Version    int       `json:"version"`
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setProductIDs(productIDs []kernel.UUID) error {
	if len(productIDs) == 0 {
		return ErrOrderHasNoProducts
	}
	for _, productID := range productIDs {
		if err := productID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("productId", err)
		}
	}

	o.productIDs = make([]kernel.UUID, len(productIDs))
	copy(o.productIDs, productIDs)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidError("version")
	}
	o.version = version
	return nil
}
