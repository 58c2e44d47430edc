//go:build unit || e2e

package builder

import (
	reqdto "airtime/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

type SignupBuilder struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

func NewSignupBuilder() *SignupBuilder {
	return &SignupBuilder{
		Email:     "new@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		Role:      "user",
	}
}

func (b *SignupBuilder) WithEmail(email string) *SignupBuilder {
	b.Email = email
	return b
}

func (b *SignupBuilder) WithRole(role string) *SignupBuilder {
	b.Role = role
	return b
}

func (b *SignupBuilder) BuildDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:     b.Email,
		Password:  b.Password,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Role:      b.Role,
	}
}
