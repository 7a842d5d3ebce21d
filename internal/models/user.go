package models

type Role int

// UserRole constants
const (
	RoleUser  Role = 1
	RoleAdmin Role = 2
)

// User represents a user in the system
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"-"` // 1=User, 2=Admin, default=1; never exposed in output
}

// UserOutput is the sanitized projection of a user: id, username and email
// only. Password hash and role never leave the system.
type UserOutput struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Output returns the sanitized projection of the user
func (u *User) Output() UserOutput {
	return UserOutput{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// Caller is the identity resolved from a validated access token. A nil
// *Caller means the request is anonymous.
type Caller struct {
	ID       int
	Username string
	Email    string
	Role     Role
}

// Output returns the sanitized projection of the caller, with no storage lookup
func (c *Caller) Output() UserOutput {
	return UserOutput{
		ID:       c.ID,
		Username: c.Username,
		Email:    c.Email,
	}
}

// RegisterRequest represents a request to register a new user
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest represents a partial update of the current user.
// Nil fields keep the stored value.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
