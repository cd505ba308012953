package graph

import (
	"errors"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

// Machine-readable error codes surfaced in extensions.code.
const (
	CodeBadUserInput  = "BAD_USER_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeUserNotFound  = "USER_NOT_FOUND"
	CodeUserExists    = "USER_ALREADY_EXISTS"
	CodeDatabaseError = "DATABASE_ERROR"
)

// RequestError is the structured error returned by every resolver. It
// satisfies gqlerrors.ExtendedError so the code and diagnostics travel in
// the response extensions.
type RequestError struct {
	Code        string
	Message     string
	InvalidArgs []string
	ErrMessage  string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Extensions renders the machine-readable part of the error envelope.
func (e *RequestError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.InvalidArgs) > 0 {
		ext["invalidArgs"] = e.InvalidArgs
	}
	if e.ErrMessage != "" {
		ext["errorMessage"] = e.ErrMessage
	}
	return ext
}

func badUserInput(message string, invalidArgs ...string) *RequestError {
	return &RequestError{Code: CodeBadUserInput, Message: message, InvalidArgs: invalidArgs}
}

// wrapError converts a service-layer error into the typed envelope.
// Validation and authorization failures keep their own codes; anything
// unexpected is a store failure reported as DATABASE_ERROR with the
// original message attached as a diagnostic.
func wrapError(err error) *RequestError {
	var re *RequestError
	if errors.As(err, &re) {
		return re
	}

	switch {
	case errors.Is(err, domain.ErrBadUserInput):
		return badUserInput("invalid or missing input")
	case errors.Is(err, domain.ErrUnauthorized):
		return &RequestError{Code: CodeUnauthorized, Message: "not authorized"}
	case errors.Is(err, domain.ErrUserNotFound):
		return &RequestError{Code: CodeUserNotFound, Message: "user not found"}
	case errors.Is(err, domain.ErrUserExists):
		return &RequestError{Code: CodeUserExists, Message: "user already exists"}
	case errors.Is(err, domain.ErrBreedNotFound):
		return badUserInput("dog breed not found", "breedId")
	case errors.Is(err, domain.ErrDogNotFound):
		return badUserInput("dog not found", "id")
	case errors.Is(err, domain.ErrInvalidToken):
		return &RequestError{Code: CodeUnauthorized, Message: "invalid token"}
	}

	return &RequestError{
		Code:       CodeDatabaseError,
		Message:    "database operation failed",
		ErrMessage: err.Error(),
	}
}
