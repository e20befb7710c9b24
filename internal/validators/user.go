package validators

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/api-blog/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldToken    = "token"
)

// PasswordMaxBytes is the longest password bcrypt can hash.
const PasswordMaxBytes = 72

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// UserValidator validates account-related inputs: [models.User] on
// registration, [models.Credentials] on token creation and
// [models.VerifyTokenRequest] on token verification.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateRegistration(value)
	case *models.User:
		return v.validateRegistration(*value)
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)
	case models.VerifyTokenRequest:
		return v.validateVerifyRequest(value)
	case *models.VerifyTokenRequest:
		return v.validateVerifyRequest(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegistration(user models.User) error {
	verr := NewValidationError()

	switch {
	case user.Username == "":
		verr.Add(FieldUsername, MsgRequired)
	case utf8.RuneCountInString(user.Username) > models.UsernameMaxLength:
		verr.Add(FieldUsername, maxLengthMessage(models.UsernameMaxLength))
	case !usernamePattern.MatchString(user.Username):
		verr.Add(FieldUsername, MsgInvalidUsername)
	}

	switch {
	case user.Password == "":
		verr.Add(FieldPassword, MsgRequired)
	case len(user.Password) > PasswordMaxBytes:
		verr.Add(FieldPassword, fmt.Sprintf("Ensure this field has no more than %d bytes.", PasswordMaxBytes))
	}

	return verr.OrNil()
}

func (v *UserValidator) validateCredentials(c models.Credentials) error {
	verr := NewValidationError()
	if c.Username == "" {
		verr.Add(FieldUsername, MsgRequired)
	}
	if c.Password == "" {
		verr.Add(FieldPassword, MsgRequired)
	}
	return verr.OrNil()
}

func (v *UserValidator) validateVerifyRequest(r models.VerifyTokenRequest) error {
	if r.Token == "" {
		return NewValidationError().Add(FieldToken, MsgRequired)
	}
	return nil
}
