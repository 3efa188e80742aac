package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/templates"
)

// formatDate renders a calendar date in the operator's language. Zero times
// render empty so the template can show its placeholder.
func formatDate(value time.Time, lang string) string {
	if value.IsZero() {
		return ""
	}
	if base, _ := language.Make(lang).Base(); base.String() == "pt" {
		return value.Format("02/01/2006")
	}
	return value.Format("Jan 2, 2006")
}

// formatMoney renders an amount with two decimals and locale grouping.
func formatMoney(amount decimal.Decimal, loc *message.Printer) string {
	return "$" + loc.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}

// formatCount renders a total with locale grouping.
func formatCount(total int, loc *message.Printer) string {
	return loc.Sprint(number.Decimal(total))
}

func shopStatusLabel(status marketplace.ShopStatus, loc *message.Printer) string {
	if status == "" {
		return ""
	}
	return loc.Sprintf("shops.status." + string(status))
}

func shopStatusVariant(status marketplace.ShopStatus) string {
	switch status {
	case marketplace.ShopStatusBanned:
		return templates.VariantDanger
	case marketplace.ShopStatusPending:
		return templates.VariantWarning
	case marketplace.ShopStatusApproved:
		return templates.VariantSuccess
	default:
		return templates.VariantNeutral
	}
}

func shopActionVariant(action marketplace.ShopAction) string {
	switch action {
	case marketplace.ShopApprove, marketplace.ShopUnban:
		return templates.VariantSuccess
	case marketplace.ShopReject:
		return templates.VariantWarning
	case marketplace.ShopBan:
		return templates.VariantDanger
	default:
		return templates.VariantNeutral
	}
}

func orderStatusLabel(status marketplace.OrderStatus, loc *message.Printer) string {
	if status == "" {
		return ""
	}
	return loc.Sprintf("orders.status." + string(status))
}

func orderStatusVariant(status marketplace.OrderStatus) string {
	switch status {
	case marketplace.OrderProcessing:
		return templates.VariantWarning
	case marketplace.OrderShipped:
		return templates.VariantInfo
	case marketplace.OrderDelivered:
		return templates.VariantSuccess
	case marketplace.OrderCancelled:
		return templates.VariantDanger
	default:
		return templates.VariantNeutral
	}
}

// roleLabel localizes the known roles and shows anything else as sent.
func roleLabel(user marketplace.User, loc *message.Printer) string {
	switch role := user.NormalizedRole(); role {
	case marketplace.RoleAdmin, marketplace.RoleModerator, marketplace.RoleUser:
		return loc.Sprintf("users.role." + strings.ToLower(role))
	default:
		return strings.TrimSpace(user.Role)
	}
}

func roleVariant(user marketplace.User) string {
	switch user.RoleBadge() {
	case "danger":
		return templates.VariantDanger
	case "warning":
		return templates.VariantWarning
	default:
		return templates.VariantNeutral
	}
}

func formatQuantity(quantity int) string {
	return strconv.Itoa(quantity)
}
