package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
)

// ListOrders fetches one page of orders.
func (s *Session) ListOrders(ctx context.Context, page, limit int) (marketplace.Page[marketplace.Order], error) {
	payload, err := s.do(ctx, request{method: http.MethodGet, path: "/orders", query: pageQuery(page, limit)})
	if err != nil {
		return marketplace.Page[marketplace.Order]{}, err
	}
	return decodePage[marketplace.Order](s.client, payload, "orders")
}

// GetOrder fetches the full order record.
func (s *Session) GetOrder(ctx context.Context, orderID string) (marketplace.Order, error) {
	payload, err := s.do(ctx, request{method: http.MethodGet, path: "/admin/orders/" + url.PathEscape(orderID)})
	if err != nil {
		return marketplace.Order{}, err
	}
	var order marketplace.Order
	if err := s.client.decodeRecord(payload, &order); err != nil {
		return marketplace.Order{}, err
	}
	return order, nil
}

// DeleteOrder removes an order.
func (s *Session) DeleteOrder(ctx context.Context, orderID string) error {
	_, err := s.do(ctx, request{method: http.MethodDelete, path: "/admin/orders/" + url.PathEscape(orderID)})
	return err
}
