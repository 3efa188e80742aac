package api

import (
	"context"
	"net/http"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
)

// ListUsers fetches one page of users.
func (s *Session) ListUsers(ctx context.Context, page, limit int) (marketplace.Page[marketplace.User], error) {
	payload, err := s.do(ctx, request{method: http.MethodGet, path: "/admin/users", query: pageQuery(page, limit)})
	if err != nil {
		return marketplace.Page[marketplace.User]{}, err
	}
	return decodePage[marketplace.User](s.client, payload, "users")
}
