package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/api-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams   = errors.New("invalid params for generating access token")
	ErrMissingTokenSubject  = errors.New("access token has no subject")
	ErrInvalidAuthorization = errors.New("invalid authorization header")
)

// GenerateJWTToken signs an HS256 access token for the blog user userID.
// The "sub" claim carries the user ID; "iss", "iat" and "exp" are always set,
// exp being tokenDuration from now.
//
//	token, err := utils.GenerateJWTToken("api-blog", user.UserID, 24*time.Hour, cfg.TokenSignKey)
//	// token.SignedString goes to the client as {"access": ...}
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	issuedAt := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
	})

	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing access token for user %d: %w", userID, err)
	}

	return models.Token{Token: token, SignedString: signed, UserID: userID}, nil
}

// ValidateAndParseJWTToken accepts only HS256 tokens signed with
// tokenSignKey, issued by tokenIssuer and carrying an unexpired "exp".
// The returned token has UserID taken from "sub".
//
// Failures wrap the jwt/v5 sentinels, so callers may check e.g.
// errors.Is(err, jwt.ErrTokenExpired).
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parser := jwt.NewParser(
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	parsed := &models.Token{}
	token, err := parser.ParseWithClaims(tokenString, parsed, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("error validating access token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error reading access token subject: %w", err)
	}
	if subject == "" {
		return models.Token{}, ErrMissingTokenSubject
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("access token subject %q is not a user id: %w", subject, err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.UserID = userID
	return *parsed, nil
}

// ParseBearerToken returns the credential of an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, credential, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	credential = strings.TrimSpace(credential)
	if !ok || !strings.EqualFold(scheme, "Bearer") || credential == "" || strings.ContainsAny(credential, " \t") {
		return "", ErrInvalidAuthorization
	}
	return credential, nil
}
