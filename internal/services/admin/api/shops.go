package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
)

// ListShops fetches one page of shops.
func (s *Session) ListShops(ctx context.Context, page, limit int) (marketplace.Page[marketplace.Shop], error) {
	payload, err := s.do(ctx, request{method: http.MethodGet, path: "/admin/shops", query: pageQuery(page, limit)})
	if err != nil {
		return marketplace.Page[marketplace.Shop]{}, err
	}
	return decodePage[marketplace.Shop](s.client, payload, "shops")
}

// GetShop fetches the full shop record.
func (s *Session) GetShop(ctx context.Context, shopID string) (marketplace.Shop, error) {
	payload, err := s.do(ctx, request{method: http.MethodGet, path: "/admin/shops/" + url.PathEscape(shopID)})
	if err != nil {
		return marketplace.Shop{}, err
	}
	var shop marketplace.Shop
	if err := s.client.decodeRecord(payload, &shop); err != nil {
		return marketplace.Shop{}, err
	}
	return shop, nil
}

// ShopAction posts a moderation transition. The response body is ignored.
func (s *Session) ShopAction(ctx context.Context, shopID string, action marketplace.ShopAction) error {
	_, err := s.do(ctx, request{
		method: http.MethodPost,
		path:   "/admin/shops/" + url.PathEscape(shopID) + "/" + string(action),
	})
	return err
}

func pageQuery(page, limit int) url.Values {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = marketplace.PageSize
	}
	return url.Values{
		"page":  []string{strconv.Itoa(page)},
		"limit": []string{strconv.Itoa(limit)},
	}
}
