package marketplace

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus accepts any casing of a known status.
func ParseOrderStatus(value string) (OrderStatus, error) {
	switch status := OrderStatus(strings.ToLower(strings.TrimSpace(value))); status {
	case OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown order status %q", value)
	}
}

// UnmarshalJSON rejects statuses outside the fixed enumeration.
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("order status: %w", err)
	}
	status, err := ParseOrderStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// LineItem is one product line in an order.
type LineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// Subtotal is quantity times unit price.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderUser is the buyer snapshot embedded in order details.
type OrderUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Name joins the buyer's name parts.
func (u OrderUser) Name() string {
	return fullName(u.FirstName, u.LastName)
}

// Address is the shipping address snapshot embedded in order details.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Lines returns the non-empty address lines for display.
func (a Address) Lines() []string {
	cityLine := strings.TrimSpace(strings.Join(nonEmpty(a.City, a.State, a.PostalCode), ", "))
	return nonEmpty(strings.TrimSpace(a.Street), cityLine, strings.TrimSpace(a.Country))
}

// Order is a buyer's purchase.
type Order struct {
	ID              string          `json:"id" validate:"required"`
	UserID          string          `json:"userId"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          OrderStatus     `json:"orderStatus" validate:"required"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Items           []LineItem      `json:"items,omitempty"`
	User            *OrderUser      `json:"user,omitempty"`
	ShippingAddress *Address        `json:"shippingAddress,omitempty"`
}

// UnmarshalJSON also accepts the "totalAmout" spelling some API versions emit.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var wire struct {
		plain
		LegacyTotal *decimal.Decimal `json:"totalAmout"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*o = Order(wire.plain)
	if o.TotalAmount.IsZero() && wire.LegacyTotal != nil {
		o.TotalAmount = *wire.LegacyTotal
	}
	return nil
}

// MergeOrder overlays the richer detail response onto the list summary.
func MergeOrder(summary, detail Order) Order {
	merged := summary
	if detail.ID != "" {
		merged.ID = detail.ID
	}
	merged.UserID = firstNonEmpty(detail.UserID, summary.UserID)
	if !detail.TotalAmount.IsZero() {
		merged.TotalAmount = detail.TotalAmount
	}
	if detail.Status != "" {
		merged.Status = detail.Status
	}
	if !detail.CreatedAt.IsZero() {
		merged.CreatedAt = detail.CreatedAt
	}
	if !detail.UpdatedAt.IsZero() {
		merged.UpdatedAt = detail.UpdatedAt
	}
	if len(detail.Items) > 0 {
		merged.Items = detail.Items
	}
	if detail.User != nil {
		merged.User = detail.User
	}
	if detail.ShippingAddress != nil {
		merged.ShippingAddress = detail.ShippingAddress
	}
	return merged
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return out
}
