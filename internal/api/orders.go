package api

import (
	"context"
	"fmt"

	"github.com/example/inventory-client/internal/apiclient"
	"github.com/example/inventory-client/internal/model"
)

// OrdersAPI manages customer orders. Status transitions, prices and
// totals are server-authoritative; this client only transports them.
type OrdersAPI struct {
	http *apiclient.Client
}

// List fetches one page of orders.
func (o *OrdersAPI) List(ctx context.Context, page model.PageRequest) (model.Page[model.Order], error) {
	var out model.Page[model.Order]
	err := o.http.Get(ctx, "/orders", page.Query(), &out)
	return out, err
}

// Get fetches a single order with its line items.
func (o *OrdersAPI) Get(ctx context.Context, id int64) (model.Order, error) {
	var out model.Order
	err := o.http.Get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out)
	return out, err
}

// Create places an order. Each line carries only a product id and a
// quantity; the server resolves names and prices and starts the order
// in PENDING.
func (o *OrdersAPI) Create(ctx context.Context, dto model.CreateOrderDTO) (model.Order, error) {
	var out model.Order
	err := o.http.Post(ctx, "/orders", dto, &out)
	return out, err
}
