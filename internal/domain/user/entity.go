package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("invalid name")

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	role         Role
	isActive     bool
}

func NewUser(email Email, passwordHash, firstName, lastName string, role Role) (*User, error) {
	if passwordHash == "" {
		return nil, errors.New("password hash is required")
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		isActive:     true,
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
