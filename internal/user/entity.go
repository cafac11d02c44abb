// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/angelamos/realty/internal/authz"
)

type User struct {
	ID                 int64      `db:"id"`
	Name               string     `db:"name"`
	Email              string     `db:"email"`
	PasswordHash       string     `db:"password_hash"`
	Role               string     `db:"role"`
	PhoneNumber        string     `db:"phone_number"`
	Address            string     `db:"address"`
	ProfilePicture     []byte     `db:"profile_picture"`
	DateOfRegistration time.Time  `db:"date_of_registration"`
	LastLogin          *time.Time `db:"last_login"`
}

func (u *User) IsAdmin() bool {
	return u.Role == authz.RoleAdmin
}

func (u *User) IsAgent() bool {
	return u.Role == authz.RoleAgent
}
