// Package api exposes the typed resource clients for the inventory
// service: auth, products, orders and transactions. Each is a thin
// façade over the shared transport; authentication, failure
// classification and user notification all happen there.
package api

import (
	"github.com/example/inventory-client/internal/apiclient"
	"github.com/example/inventory-client/internal/session"
)

// Client bundles the four resource clients over one shared transport.
type Client struct {
	Auth         *AuthAPI
	Products     *ProductsAPI
	Orders       *OrdersAPI
	Transactions *TransactionsAPI
}

// NewClient wires the resource clients to core. tokens is the same
// store given to the transport; Auth writes it on login and clears it
// on logout.
func NewClient(core *apiclient.Client, tokens session.TokenStore) *Client {
	return &Client{
		Auth:         &AuthAPI{http: core, tokens: tokens},
		Products:     &ProductsAPI{http: core},
		Orders:       &OrdersAPI{http: core},
		Transactions: &TransactionsAPI{http: core},
	}
}
