package api

import (
	"context"
	"fmt"

	"github.com/example/inventory-client/internal/apiclient"
	"github.com/example/inventory-client/internal/model"
)

// ProductsAPI manages the product catalog.
type ProductsAPI struct {
	http *apiclient.Client
}

// List fetches one page of products.
func (p *ProductsAPI) List(ctx context.Context, page model.PageRequest) (model.Page[model.Product], error) {
	var out model.Page[model.Product]
	err := p.http.Get(ctx, "/products", page.Query(), &out)
	return out, err
}

// Get fetches a single product by id.
func (p *ProductsAPI) Get(ctx context.Context, id int64) (model.Product, error) {
	var out model.Product
	err := p.http.Get(ctx, fmt.Sprintf("/products/%d", id), nil, &out)
	return out, err
}

// Create registers a new product. The server assigns the id and
// timestamps.
func (p *ProductsAPI) Create(ctx context.Context, dto model.CreateProductDTO) (model.Product, error) {
	var out model.Product
	err := p.http.Post(ctx, "/products", dto, &out)
	return out, err
}

// Update applies a partial update; only the non-nil fields of dto are
// sent.
func (p *ProductsAPI) Update(ctx context.Context, id int64, dto model.UpdateProductDTO) (model.Product, error) {
	var out model.Product
	err := p.http.Put(ctx, fmt.Sprintf("/products/%d", id), dto, &out)
	return out, err
}

// Delete removes a product by id.
func (p *ProductsAPI) Delete(ctx context.Context, id int64) error {
	return p.http.Delete(ctx, fmt.Sprintf("/products/%d", id))
}
