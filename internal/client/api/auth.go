package api

import (
	"context"
	"net/http"

	pkgapi "github.com/playlog/playlog/pkg/api"
)

// Login authenticates the user and returns the bearer token together
// with the identity it belongs to. A success reply without a token is
// a malformed response, not an empty result.
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginData, error) {
	var data pkgapi.LoginData
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/login",
		op:     "login",
		body:   req,
	}, &data)
	if err != nil {
		return nil, err
	}

	if data.Token == "" || data.User.Username == "" {
		return nil, &MalformedError{Op: "login"}
	}

	return &data, nil
}

// Logout notifies the backend that the session is over. The reply is
// a plain ack; the caller clears local state regardless of outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/logout",
		op:     "logout",
		token:  token,
	}, nil)
}
