package api

import (
	"context"
	"fmt"

	"github.com/example/inventory-client/internal/apiclient"
	"github.com/example/inventory-client/internal/model"
	"github.com/example/inventory-client/internal/session"
)

// AuthAPI handles authentication and the current session.
type AuthAPI struct {
	http   *apiclient.Client
	tokens session.TokenStore
}

// Login exchanges credentials for a bearer token and stores the token
// for subsequent requests.
func (a *AuthAPI) Login(ctx context.Context, creds model.LoginCredentials) (model.LoginResult, error) {
	var result model.LoginResult
	if err := a.http.Post(ctx, "/auth/login", creds, &result); err != nil {
		return model.LoginResult{}, err
	}
	if a.tokens != nil && result.Token != "" {
		if err := a.tokens.Set(ctx, result.Token); err != nil {
			return result, fmt.Errorf("store session token: %w", err)
		}
	}
	return result, nil
}

// CurrentUser fetches the user the stored token belongs to. Without a
// valid token the server answers 401, which clears the session.
func (a *AuthAPI) CurrentUser(ctx context.Context) (model.User, error) {
	var user model.User
	if err := a.http.Get(ctx, "/auth/me", nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Logout discards the stored token. Purely local; the server keeps no
// session state beyond the token itself.
func (a *AuthAPI) Logout(ctx context.Context) error {
	if a.tokens == nil {
		return nil
	}
	return a.tokens.Clear(ctx)
}
