package models

// AccessTokenResponse is returned by the token creation endpoint.
type AccessTokenResponse struct {
	// Access is the signed JWT to be sent as "Authorization: Bearer <access>".
	Access string `json:"access"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsStaff  *bool  `json:"is_staff,omitempty"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	// Detail is a human-readable description of the failure.
	Detail string `json:"detail"`

	// Errors holds per-field validation messages keyed by field name.
	// It is only present for validation failures.
	Errors map[string][]string `json:"errors,omitempty"`
}
