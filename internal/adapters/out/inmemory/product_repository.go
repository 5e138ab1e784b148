package inmemory

import (
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/product"
)

// ProductRepository is the in-memory implementation of ports.ProductRepository.
type ProductRepository struct {
	repo[*product.Product]
}

func newProductRepository(store *store[*product.Product]) *ProductRepository {
	return &ProductRepository{repo[*product.Product]{
		store:     store,
		paramName: "productId",
		id:        func(p *product.Product) kernel.UUID { return p.ID() },
		validate:  func(p *product.Product) error { return p.Validate() },
		clone: func(p *product.Product) (*product.Product, error) {
			return product.RestoreProduct(p.ID(), p.Name(), p.Price())
		},
	}}
}
