package http

import (
	"net/http"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/utils"
)

// authenticate resolves the requester behind the "Authorization" header and
// stores it in the request context with [utils.WithRequester].
//
// It never rejects a request. A missing header, a header that is not a
// bearer credential, or a token that fails verification all leave the
// requester anonymous (nil); each operation then decides whether an
// anonymous caller is acceptable. Rejected credentials are logged.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r.WithContext(utils.WithRequester(ctx, nil)))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring authorization header")
			next.ServeHTTP(w, r.WithContext(utils.WithRequester(ctx, nil)))
			return
		}

		requester, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("bearer token rejected, continuing as anonymous")
			next.ServeHTTP(w, r.WithContext(utils.WithRequester(ctx, nil)))
			return
		}

		log.Debug().Int64("user_id", requester.UserID).Msg("requester authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithRequester(ctx, requester)))
	})
}
