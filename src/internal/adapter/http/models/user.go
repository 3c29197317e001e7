package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	var errs []string

	fullName := strings.TrimSpace(r.FullName)
	if len(fullName) < 2 || len(fullName) > 255 {
		errs = append(errs, "fullName must be between 2 and 255 characters")
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		errs = append(errs, "email must be a valid address")
	}

	if len(r.Password) < 8 || len(r.Password) > 128 {
		errs = append(errs, "password must be between 8 and 128 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
