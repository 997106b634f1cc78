// models/user.go
package models

// Role values accepted at registration
const (
	RoleFarmer    = "farmer"
	RoleInsurance = "insurance"
	RoleBank      = "bank"
)

// UserRecord is a single finalized registration. The store is append-only:
// records are never updated or deleted once written. Which identity fields
// are set depends on the role (farmers use name, banks and insurance
// companies use id and companyName).
type UserRecord struct {
	Role          string `json:"role" validate:"required,oneof=farmer insurance bank"`
	Name          string `json:"name,omitempty"`
	ID            string `json:"id,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	EmailVerified bool   `json:"emailVerified"`
	Timestamp     string `json:"timestamp,omitempty"`
}

// Response model
type Response struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	DevMode bool        `json:"devMode,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
