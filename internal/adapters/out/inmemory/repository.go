package inmemory

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// repo implements the common repository contract over a store. Typed
// repositories embed it and add their aggregate-specific queries.
//
// Values are cloned through the aggregate's restore constructor on every
// write and read, so callers can never mutate stored state through a shared
// pointer.
type repo[T any] struct {
	store     *store[T]
	paramName string
	id        func(T) kernel.UUID
	validate  func(T) error
	clone     func(T) (T, error)
}

func (r *repo[T]) Add(_ context.Context, aggregate T) error {
	if err := r.validate(aggregate); err != nil {
		return err
	}

	snapshot, err := r.clone(aggregate)
	if err != nil {
		return err
	}
	if !r.store.add(r.id(aggregate), snapshot) {
		return errs.NewValueIsNotUniqueError(r.paramName, r.id(aggregate).String())
	}
	return nil
}

func (r *repo[T]) Update(_ context.Context, aggregate T) error {
	if err := r.validate(aggregate); err != nil {
		return err
	}

	snapshot, err := r.clone(aggregate)
	if err != nil {
		return err
	}
	found, err := r.store.update(r.id(aggregate), func(T) (T, error) {
		return snapshot, nil
	})
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError(r.paramName, r.id(aggregate).String())
	}
	return nil
}

func (r *repo[T]) Get(_ context.Context, id kernel.UUID) (T, error) {
	var zero T

	value, ok := r.store.get(id)
	if !ok {
		return zero, errs.NewObjectNotFoundError(r.paramName, id.String())
	}
	return r.clone(value)
}

func (r *repo[T]) GetAll(_ context.Context) ([]T, error) {
	return r.cloneAll(r.store.all())
}

func (r *repo[T]) GetPaged(_ context.Context, page, pageSize int) ([]T, int64, error) {
	page, pageSize = ports.NormalizePage(page, pageSize)

	values, total := r.store.paged(page, pageSize)
	cloned, err := r.cloneAll(values)
	if err != nil {
		return nil, 0, err
	}
	return cloned, total, nil
}

func (r *repo[T]) Delete(_ context.Context, id kernel.UUID) error {
	r.store.delete(id)
	return nil
}

func (r *repo[T]) cloneAll(values []T) ([]T, error) {
	out := make([]T, len(values))
	for i, v := range values {
		cloned, err := r.clone(v)
		if err != nil {
			return nil, err
		}
		out[i] = cloned
	}
	return out, nil
}
