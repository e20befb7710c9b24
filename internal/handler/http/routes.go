package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// postDetailRoute only matches numeric ids; anything else is a 404.
const postDetailRoute = "/posts/{" + postIDParam + ":[0-9]+}/"

// candidateMethods is the order in which methods are listed in Allow.
var candidateMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.GetHead)
	router.Use(middleware.Compress(5, contentTypeJSON))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, r, "Not found.", http.StatusNotFound)
	})
	router.MethodNotAllowed(methodNotAllowed(router))

	// service routes
	router.Get("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}).ServeHTTP)
	router.Get("/version/", h.getServerVersion)

	// API routes: the requester is resolved here, each handler decides
	// whether an anonymous caller may proceed
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/posts/", h.listPosts)
		r.Post("/posts/", h.createPost)
		r.Get(postDetailRoute, h.getPost)
		r.Patch(postDetailRoute, h.updatePost)
		r.Delete(postDetailRoute, h.deletePost)

		r.Post("/auth/users/", h.registerUser)
		r.Get("/auth/users/me/", h.currentUser)
		r.Post("/auth/jwt/create/", h.createToken)
		r.Post("/auth/jwt/verify/", h.verifyToken)
	})

	return router
}

// methodNotAllowed answers 405 with an Allow header listing every method
// that the requested path does accept. HEAD is implied by GET.
func methodNotAllowed(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", strings.Join(allowedMethods(router, r.URL.Path), ", "))
		writeDetail(w, r, fmt.Sprintf("Method %q not allowed.", r.Method), http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	allowed := make([]string, 0, len(candidateMethods))
	get := router.Match(chi.NewRouteContext(), http.MethodGet, path)

	for _, method := range candidateMethods {
		if router.Match(chi.NewRouteContext(), method, path) || (method == http.MethodHead && get) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
