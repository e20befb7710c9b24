package permissions

import "errors"

var (
	// ErrAuthenticationRequired is returned when a mutating operation is
	// attempted without a valid credential.
	ErrAuthenticationRequired = errors.New("authentication credentials were not provided")

	// ErrForbidden is returned when an authenticated requester tries to
	// modify a post they neither authored nor may moderate.
	ErrForbidden = errors.New("you do not have permission to modify another user's content")
)
