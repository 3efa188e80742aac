package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
)

// Credentials is the staff login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a bearer token. A response without a token
// yields "" and no error; the caller decides how to treat it.
func (s *Session) Login(ctx context.Context, creds Credentials) (string, error) {
	payload, err := s.do(ctx, request{
		method:    http.MethodPost,
		path:      "/admin/login",
		body:      creds,
		anonymous: true,
	})
	if err != nil {
		return "", err
	}
	data, err := decodeData(payload)
	if err != nil {
		return "", err
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return "", decodeError(`"data" is not a login result`, err)
	}
	return body.Token, nil
}

// Profile resolves the identity behind the stored token.
func (s *Session) Profile(ctx context.Context) (marketplace.Admin, error) {
	payload, err := s.do(ctx, request{method: http.MethodGet, path: "/users/profile"})
	if err != nil {
		return marketplace.Admin{}, err
	}
	var admin marketplace.Admin
	if err := s.client.decodeRecord(payload, &admin); err != nil {
		return marketplace.Admin{}, err
	}
	return admin, nil
}
