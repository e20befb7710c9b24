package http

import (
	"net/http"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/permissions"
	"github.com/MKhiriev/api-blog/internal/utils"
	"github.com/MKhiriev/api-blog/internal/validators"
	"github.com/MKhiriev/api-blog/models"
)

// registerUser creates a regular (non-staff) account. Staff accounts are
// only created by the blogadmin command.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")
	utils.WriteJSON(w, models.UserResponse{
		ID:       registeredUser.UserID,
		Username: registeredUser.Username,
	}, http.StatusCreated)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	requester := utils.GetRequesterFromContext(r.Context())
	if requester == nil {
		writeError(w, r, permissions.ErrAuthenticationRequired)
		return
	}

	isStaff := requester.IsStaff
	utils.WriteJSON(w, models.UserResponse{
		ID:       requester.UserID,
		Username: requester.Username,
		IsStaff:  &isStaff,
	}, http.StatusOK)
}

func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AccessTokenResponse{Access: token.SignedString}, http.StatusOK)
}

func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	values, err := decodeStrings(w, r, validators.FieldToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	err = h.services.AuthService.VerifyToken(r.Context(), models.VerifyTokenRequest{Token: values[validators.FieldToken]})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, struct{}{}, http.StatusOK)
}
