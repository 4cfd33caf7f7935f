package domain

import "time"

// Role is the closed set of authorization levels. The role carried by an
// Identity is the sole authorization signal in the system; it is assigned by
// the backend on registration and changed only through user administration.
type Role string

const (
	RoleUser     Role = "user"
	RoleSubAdmin Role = "sub_admin"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a raw role string onto the closed enumeration. An empty or
// unknown value degrades to RoleUser, never upward.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleSubAdmin:
		return RoleSubAdmin
	default:
		return RoleUser
	}
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleSubAdmin, RoleAdmin:
		return true
	}
	return false
}

// CanAccessAdminArea reports whether r satisfies the admin-area base
// requirement (admin or sub_admin).
func (r Role) CanAccessAdminArea() bool {
	return r == RoleAdmin || r == RoleSubAdmin
}

// Identity is the authenticated principal as returned by the backend.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Role        Role   `json:"role"`
	Phone       string `json:"phone,omitempty"`
	AvatarURL   string `json:"image,omitempty"`
}

// User is the full account record, including credentials. The password hash
// never leaves the process boundary.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	AvatarURL    string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity projects the account record onto its public shape.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Phone:       u.Phone,
		AvatarURL:   u.AvatarURL,
	}
}
