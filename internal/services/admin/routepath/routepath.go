// Package routepath names every console URL so handlers, templates, and route
// modules agree on one spelling.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root         = "/"
	Healthz      = "/healthz"
	StaticPrefix = "/static/"
)

const (
	Login  = "/login"
	Logout = "/logout"
)

const (
	Shops       = "/shops"
	ShopsTable  = "/shops/table"
	ShopsPrefix = "/shops/"
)

const (
	Users       = "/users"
	UsersTable  = "/users/table"
	UsersPrefix = "/users/"
)

const (
	Orders       = "/orders"
	OrdersTable  = "/orders/table"
	OrdersPrefix = "/orders/"
)

func Shop(shopID string) string {
	return Shops + "/" + escapeSegment(shopID)
}

func ShopDetail(shopID string) string {
	return Shop(shopID) + "/detail"
}

// ShopAction returns the POST target for one moderation action.
func ShopAction(shopID string, action string) string {
	return Shop(shopID) + "/" + escapeSegment(action)
}

func User(userID string) string {
	return Users + "/" + escapeSegment(userID)
}

func Order(orderID string) string {
	return Orders + "/" + escapeSegment(orderID)
}

func OrderDetail(orderID string) string {
	return Order(orderID) + "/detail"
}

func OrderDelete(orderID string) string {
	return Order(orderID) + "/delete"
}

// Paged appends a page number to a table URL.
func Paged(base string, page int) string {
	return WithQuery(base, url.Values{"page": {strconv.Itoa(max(page, 1))}})
}

// WithQuery appends non-empty query values to base.
func WithQuery(base string, values url.Values) string {
	clean := url.Values{}
	for key, vals := range values {
		for _, v := range vals {
			if strings.TrimSpace(v) != "" {
				clean.Add(key, v)
			}
		}
	}
	if len(clean) == 0 {
		return base
	}
	return base + "?" + clean.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

