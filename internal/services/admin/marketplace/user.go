package marketplace

import "strings"

// Role values as reported by the API. Comparison is case-insensitive.
const (
	RoleAdmin     = "ADMIN"
	RoleModerator = "MODERATOR"
	RoleUser      = "USER"
)

// RoleFilterAll disables the role filter.
const RoleFilterAll = "all"

// User is a marketplace account.
type User struct {
	ID        string `json:"id" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Name joins the name parts.
func (u User) Name() string {
	return fullName(u.FirstName, u.LastName)
}

// NormalizedRole returns the upper-cased role.
func (u User) NormalizedRole() string {
	return strings.ToUpper(strings.TrimSpace(u.Role))
}

// RoleBadge picks the badge variant for the user's role.
func (u User) RoleBadge() string {
	switch u.NormalizedRole() {
	case RoleAdmin:
		return "danger"
	case RoleModerator:
		return "warning"
	default:
		return "neutral"
	}
}

// UserFilter narrows an already-fetched page of users.
type UserFilter struct {
	Search string
	Role   string
}

// Active reports whether the filter excludes anything.
func (f UserFilter) Active() bool {
	return strings.TrimSpace(f.Search) != "" || !isAllRoles(f.Role)
}

// Matches applies a case-insensitive substring search over first name, last
// name and email, and an exact case-insensitive role match.
func (f UserFilter) Matches(u User) bool {
	if !isAllRoles(f.Role) && !strings.EqualFold(strings.TrimSpace(f.Role), u.NormalizedRole()) {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	for _, field := range []string{u.FirstName, u.LastName, u.Email, u.Name()} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// FilterUsers returns the users matching f, preserving order.
func FilterUsers(users []User, f UserFilter) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if f.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}

func isAllRoles(role string) bool {
	role = strings.TrimSpace(role)
	return role == "" || strings.EqualFold(role, RoleFilterAll)
}
