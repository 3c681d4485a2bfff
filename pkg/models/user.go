package models

// Role constants for platform users.
const (
	RoleInvestor = "investor"
	RoleFounder  = "founder"
	RoleAdmin    = "admin"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleInvestor, RoleFounder, RoleAdmin}

// User is a platform account. The demo deployment ships with a fixed
// credential list; there is no registration flow.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	// CompanyID links founder accounts to the company they represent.
	CompanyID string `json:"companyId,omitempty"`
}

// IsValidRole checks if the given role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
