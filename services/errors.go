package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotFound           = errors.New("record not found")
	ErrIncompleteProfile  = errors.New("profile is missing date of birth, gender or height")
	ErrInvalidInput       = errors.New("invalid input")
)
