package graph

import (
	"errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all mutation inputs; inputs are plain structs so
// the instance carries no per-request state.
var validate = validator.New()

type createUserInput struct {
	Email          string `validate:"required,email"`
	Password       string `validate:"required"`
	Username       string `validate:"required"`
	FullName       string `validate:"required"`
	Role           string `validate:"omitempty,oneof=READER EDITOR ADMIN"`
	ProfilePicture string `validate:"omitempty,url"`
	Bio            string
	Country        string
}

type loginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type createDogInput struct {
	Name        string `validate:"required"`
	Description string
	URL         string `validate:"required"`
	Image       string `validate:"omitempty,url"`
	BreedID     string `validate:"required"`
}

type createBreedInput struct {
	Name        string `validate:"required"`
	Group       string `validate:"required"`
	Section     string `validate:"required"`
	Provisional string
	Country     string `validate:"required"`
	URL         string `validate:"required"`
	Image       string `validate:"omitempty,url"`
	PDF         string `validate:"omitempty,url"`
}

// checkInput validates a mutation input struct and converts failures into
// a BAD_USER_INPUT envelope listing the offending argument names.
func checkInput(input any) *RequestError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return badUserInput("invalid input")
	}

	args := make([]string, 0, len(ve))
	for _, fe := range ve {
		args = append(args, argName(fe.Field()))
	}
	return badUserInput("invalid or missing arguments", args...)
}

// argName maps a Go field name to its schema argument name. The schema
// uses lowerCamelCase except for acronyms kept lowercase.
func argName(field string) string {
	switch field {
	case "URL":
		return "url"
	case "PDF":
		return "pdf"
	case "BreedID":
		return "breedId"
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// argString reads an optional string argument, tolerating absence.
func argString(args map[string]interface{}, name string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return ""
}
