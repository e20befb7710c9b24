package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an access token issued to a user.
//
// It embeds [jwt.RegisteredClaims] so it can be handed directly to
// jwt.ParseWithClaims; the "sub" claim carries the user ID.
type Token struct {
	// Token is the underlying JWT, set after signing or parsing.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent to clients.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user ID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting user ID from token to int64: %w", err)
	}

	return userID, nil
}

// String implements [fmt.Stringer] and returns the signed token.
func (t *Token) String() string {
	return t.SignedString
}
