package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown username or
	// a wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is invalid or expired")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")
)
