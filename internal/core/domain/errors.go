package domain

import "errors"

var (
	ErrBadUserInput  = errors.New("bad user input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrDogNotFound   = errors.New("dog not found")
	ErrBreedNotFound = errors.New("dog breed not found")
	ErrInvalidToken  = errors.New("invalid token")
)
