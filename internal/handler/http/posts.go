package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/utils"
	"github.com/MKhiriev/api-blog/models"
)

const postIDParam = "id"

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := h.services.PostService.Create(ctx, utils.GetRequesterFromContext(ctx), bodyReader(w, r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/posts/%d/", post.ID))
	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Update(ctx, id, utils.GetRequesterFromContext(ctx), bodyReader(w, r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.Delete(ctx, id, utils.GetRequesterFromContext(ctx)); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("post_id", id).Msg("post removed")
	w.WriteHeader(http.StatusNoContent)
}

// bodyReader defers decoding of the request body until the service asks
// for it. Malformed bodies and unsupported media types surface from the
// service call as ErrMalformedBody and ErrUnsupportedMediaType.
func bodyReader(w http.ResponseWriter, r *http.Request) models.PostInputReader {
	return func() (models.PostInput, error) {
		return decodePostInput(w, r)
	}
}

// postIDFromRequest parses the {id} route parameter. The route only matches
// digits, so the only possible failure is an id beyond int64.
func postIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, postIDParam)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPostID, raw)
	}
	return id, nil
}
