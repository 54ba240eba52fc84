package entity

import "fmt"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

type User struct {
	Base
	Name         string   `db:"name"`
	Surname      string   `db:"surname"`
	Email        string   `db:"email"`
	Phone        string   `db:"phone"`
	BirthDate    string   `db:"birth_date"` // YYYY-MM-DD
	Country      string   `db:"country"`
	City         string   `db:"city"`
	Role         UserRole `db:"role"`
	PasswordHash string   `db:"password"`
	IsActive     bool     `db:"is_active"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
