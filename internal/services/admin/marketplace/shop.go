package marketplace

import "time"

// ShopStatus is the badge derived from a shop's moderation flags.
type ShopStatus string

const (
	ShopStatusBanned   ShopStatus = "banned"
	ShopStatusPending  ShopStatus = "pending"
	ShopStatusApproved ShopStatus = "approved"
)

// Label returns the English badge label.
func (s ShopStatus) Label() string {
	switch s {
	case ShopStatusBanned:
		return "Banned"
	case ShopStatusPending:
		return "Pending"
	case ShopStatusApproved:
		return "Approved"
	default:
		return ""
	}
}

// Shop is a seller storefront awaiting or under moderation.
type Shop struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name"`
	OwnerName   string    `json:"ownerName"`
	Email       string    `json:"email"`
	Location    string    `json:"location,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Description string    `json:"description,omitempty"`
	IsApproved  bool      `json:"isApproved"`
	IsBanned    bool      `json:"isBanned"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Status derives the badge with precedence banned > pending > approved.
func (s Shop) Status() ShopStatus {
	switch {
	case s.IsBanned:
		return ShopStatusBanned
	case !s.IsApproved:
		return ShopStatusPending
	default:
		return ShopStatusApproved
	}
}

// ShopAction is a moderation transition exposed by the API.
type ShopAction string

const (
	ShopApprove ShopAction = "approve"
	ShopReject  ShopAction = "reject"
	ShopBan     ShopAction = "ban"
	ShopUnban   ShopAction = "unban"
)

// ParseShopAction returns the action named by value.
func ParseShopAction(value string) (ShopAction, bool) {
	switch action := ShopAction(value); action {
	case ShopApprove, ShopReject, ShopBan, ShopUnban:
		return action, true
	default:
		return "", false
	}
}

// AvailableActions lists the buttons the shop table offers for s: approve and
// reject while the shop awaits approval, plus ban or unban by flag. The server
// remains the authority on whether a transition is legal.
func (s Shop) AvailableActions() []ShopAction {
	var actions []ShopAction
	if !s.IsApproved {
		actions = append(actions, ShopApprove, ShopReject)
	}
	if s.IsBanned {
		actions = append(actions, ShopUnban)
	} else {
		actions = append(actions, ShopBan)
	}
	return actions
}

// Apply patches the single field a successful action changes. The next list
// re-fetch supersedes it.
func (s Shop) Apply(action ShopAction) Shop {
	switch action {
	case ShopApprove:
		s.IsApproved = true
	case ShopReject:
		s.IsApproved = false
	case ShopBan:
		s.IsBanned = true
	case ShopUnban:
		s.IsBanned = false
	}
	return s
}

// MergeShop overlays the non-empty fields of detail onto summary. Flags always
// come from detail since it is the fresher read.
func MergeShop(summary, detail Shop) Shop {
	merged := summary
	if detail.ID != "" {
		merged.ID = detail.ID
	}
	merged.Name = firstNonEmpty(detail.Name, summary.Name)
	merged.OwnerName = firstNonEmpty(detail.OwnerName, summary.OwnerName)
	merged.Email = firstNonEmpty(detail.Email, summary.Email)
	merged.Location = firstNonEmpty(detail.Location, summary.Location)
	merged.PhoneNumber = firstNonEmpty(detail.PhoneNumber, summary.PhoneNumber)
	merged.Description = firstNonEmpty(detail.Description, summary.Description)
	merged.IsApproved = detail.IsApproved
	merged.IsBanned = detail.IsBanned
	merged.IsVerified = detail.IsVerified
	if !detail.CreatedAt.IsZero() {
		merged.CreatedAt = detail.CreatedAt
	}
	return merged
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
