package quake

import (
	"context"
	"errors"
	"net/http"
)

const (
	MsgLoginFailed    = "Login failed. Check your credentials."
	MsgRegisterFailed = "Could not create the account. Check the data."
)

var ErrMissingToken = errors.New("login response did not include a token")

type authService struct {
	client *Client
}

func (s *authService) Login(ctx context.Context, creds Credentials) (string, error) {
	const route = "/login"

	var resp LoginResponse
	if err := s.client.do(ctx, request{
		method:   http.MethodPost,
		route:    route,
		body:     creds,
		result:   &resp,
		public:   true,
		fallback: MsgLoginFailed,
	}); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrMissingToken
	}
	return resp.Token, nil
}

func (s *authService) Register(ctx context.Context, reg Registration) error {
	const route = "/users/create"

	return s.client.do(ctx, request{
		method:   http.MethodPost,
		route:    route,
		body:     reg,
		public:   true,
		fallback: MsgRegisterFailed,
	})
}
