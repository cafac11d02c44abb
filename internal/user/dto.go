// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN AGENT BUYER"`

	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Address     string `json:"address"      validate:"omitempty,max=500"`
}

type UpdateUserRequest struct {
	Name           *string `json:"name,omitempty"         validate:"omitempty,min=1,max=100"`
	PhoneNumber    *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Address        *string `json:"address,omitempty"      validate:"omitempty,max=500"`
	ProfilePicture *[]byte `json:"profile_picture,omitempty"`
}

type UserResponse struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	PhoneNumber        string     `json:"phone_number,omitempty"`
	Address            string     `json:"address,omitempty"`
	ProfilePicture     []byte     `json:"profile_picture,omitempty"`
	DateOfRegistration time.Time  `json:"date_of_registration"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
}

type ListUsersParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
	Role     string `json:"role"`
}

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		PhoneNumber:        u.PhoneNumber,
		Address:            u.Address,
		ProfilePicture:     u.ProfilePicture,
		DateOfRegistration: u.DateOfRegistration,
		LastLogin:          u.LastLogin,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
