package api

import (
	"context"

	"github.com/example/inventory-client/internal/apiclient"
	"github.com/example/inventory-client/internal/model"
)

// TransactionsAPI records stock movements. Transactions are append-only
// through this client: created, never updated or deleted.
type TransactionsAPI struct {
	http *apiclient.Client
}

// List fetches one page of transactions.
func (t *TransactionsAPI) List(ctx context.Context, page model.PageRequest) (model.Page[model.Transaction], error) {
	var out model.Page[model.Transaction]
	err := t.http.Get(ctx, "/transactions", page.Query(), &out)
	return out, err
}

// Create records a stock movement. The server assigns the id and
// timestamp and applies the effect on the product's stock quantity.
func (t *TransactionsAPI) Create(ctx context.Context, dto model.CreateTransactionDTO) (model.Transaction, error) {
	var out model.Transaction
	err := t.http.Post(ctx, "/transactions", dto, &out)
	return out, err
}
