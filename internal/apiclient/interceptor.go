package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
)

// Canned user-facing messages for failures the server did not explain.
const (
	msgSessionExpired = "Session expired. Please login again."
	msgServerError    = "Server error. Please try again later."
	msgUnexpected     = "An unexpected error occurred."
)

// authenticateRequest stamps the stored bearer token onto the request.
// An empty or missing token leaves the request unauthenticated; that is
// never an error at this layer, only at the server.
func (c *Client) authenticateRequest(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Get(ctx)
	if err != nil {
		c.log.WithError(err).Warn("token store read failed; sending unauthenticated")
		return nil
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

// classifyResponse maps a failed call onto the error taxonomy and runs
// the associated side effects, exactly once per failure. Precedence:
// 401, then status >= 500, then a server-supplied message, then
// unknown. Successful responses pass through untouched.
func (c *Client) classifyResponse(ctx context.Context, resp *http.Response, body []byte, err error) error {
	if err == nil && resp != nil && resp.StatusCode < 400 {
		return nil
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	message := serverMessage(body)

	switch {
	case status == http.StatusUnauthorized:
		if c.tokens != nil {
			if clearErr := c.tokens.Clear(ctx); clearErr != nil {
				c.log.WithError(clearErr).Warn("failed to clear stored token")
			}
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		c.notify(SeverityError, msgSessionExpired)
		if message == "" {
			message = msgSessionExpired
		}
		return &Error{Kind: KindUnauthorized, StatusCode: status, Message: message, cause: err}

	case status >= http.StatusInternalServerError:
		c.notify(SeverityError, msgServerError)
		if message == "" {
			message = msgServerError
		}
		return &Error{Kind: KindServer, StatusCode: status, Message: message, cause: err}

	case message != "":
		c.notify(SeverityError, message)
		return &Error{Kind: KindAPI, StatusCode: status, Message: message, cause: err}

	default:
		c.notify(SeverityError, msgUnexpected)
		return &Error{Kind: KindUnknown, StatusCode: status, Message: msgUnexpected, cause: err}
	}
}

// serverMessage extracts the human-readable message field from an
// error body, if the body carries one.
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
