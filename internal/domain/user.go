package domain

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// User is an account. Password holds the bcrypt hash and never leaves the
// process in a response body.
type User struct {
	Record
	Email       string     `json:"email" validate:"required,email,max=255"`
	Password    string     `json:"-"`
	Name        string     `json:"name" validate:"required,max=100"`
	IDNumber    string     `json:"idNumber" validate:"required,max=32"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	Phone       *string    `json:"phone,omitempty" validate:"omitempty,max=32"`
	Gender      *Gender    `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Address     *string    `json:"address,omitempty"`
	Role        Role       `json:"role" validate:"required,oneof=USER ADMIN"`
	IsForgotten bool       `json:"isForgotten"`
}
