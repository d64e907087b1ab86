// Package session holds the single piece of client-side state: the
// bearer token issued at login. Everything else in this module is
// stateless.
package session

import "context"

// TokenStore persists the bearer token across requests. Get returns an
// empty string when no token is stored; that is not an error. Set on
// successful login, Clear on logout or when the server rejects the
// session.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
