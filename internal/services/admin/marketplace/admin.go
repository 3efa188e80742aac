package marketplace

import "strings"

// Admin is the identity returned by the profile endpoint for the signed-in
// staff member.
type Admin struct {
	ID         string `json:"id" validate:"required"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
	Type       string `json:"type"`
	Phone      string `json:"phone"`
}

// DisplayName prefers the full name, then email, then id.
func (a Admin) DisplayName() string {
	if name := fullName(a.FirstName, a.LastName); name != "" {
		return name
	}
	if email := strings.TrimSpace(a.Email); email != "" {
		return email
	}
	return a.ID
}

func fullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
