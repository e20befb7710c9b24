package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/permissions"
	"github.com/MKhiriev/api-blog/internal/service"
	"github.com/MKhiriev/api-blog/internal/store"
	"github.com/MKhiriev/api-blog/internal/utils"
	"github.com/MKhiriev/api-blog/internal/validators"
	"github.com/MKhiriev/api-blog/models"
)

// wwwAuthenticate is sent with every 401 response.
const wwwAuthenticate = `Bearer realm="api"`

var errorStatusMap = map[error]int{
	validators.ErrInvalidData: http.StatusBadRequest,
	ErrMalformedBody:          http.StatusBadRequest,
	ErrUnsupportedMediaType:   http.StatusUnsupportedMediaType,

	permissions.ErrAuthenticationRequired: http.StatusUnauthorized,
	service.ErrInvalidCredentials:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:    http.StatusUnauthorized,
	// the author was deleted between authentication and insert
	store.ErrNoUserWasFound: http.StatusUnauthorized,

	permissions.ErrForbidden: http.StatusForbidden,

	store.ErrPostNotFound: http.StatusNotFound,
	ErrInvalidPostID:      http.StatusNotFound,
}

// errorDetailMap holds the client-facing wording for each mapped error.
var errorDetailMap = map[error]string{
	validators.ErrInvalidData: "Invalid input.",
	ErrMalformedBody:          "Malformed request body.",
	ErrUnsupportedMediaType:   "Unsupported media type in request.",

	permissions.ErrAuthenticationRequired: "Authentication credentials were not provided.",
	service.ErrInvalidCredentials:         "No active account found with the given credentials",
	service.ErrTokenIsExpiredOrInvalid:    "Token is invalid or expired",
	store.ErrNoUserWasFound:               "User not found.",

	permissions.ErrForbidden: "You do not have permission to perform this action.",

	store.ErrPostNotFound: "Not found.",
	ErrInvalidPostID:      "Not found.",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	return "internal server error"
}

// writeError renders err as an [models.ErrorResponse]. Field messages are
// included for validation failures; 5xx responses never expose err itself.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	response := models.ErrorResponse{Detail: detailFromError(err)}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		response.Errors = verr.Fields
	}

	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Str("func", "writeError").Msg("request failed")
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", wwwAuthenticate)
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Str("func", "writeError").Msg("error writing error response")
	}
}

// writeDetail writes a bare {"detail": ...} body with status.
func writeDetail(w http.ResponseWriter, r *http.Request, detail string, status int) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeDetail").Msg("error writing response")
	}
}
