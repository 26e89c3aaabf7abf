package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/spende/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// APIPrefix mounts the API a second time under this path, e.g. "/api".
	// Empty disables the extra mount.
	APIPrefix      string
	AllowedOrigins []string
	Metrics        *Metrics
}

// NewRouter builds the full HTTP handler.
func NewRouter(h *Handler, log logging.Logger, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(accessLog(log))
	r.Use(recoverer(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Instrument)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Group(h.routes)
	if opts.APIPrefix != "" && opts.APIPrefix != "/" {
		r.Route(opts.APIPrefix, h.routes)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, apiError{http.StatusNotFound, "Not found", "no route for " + r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, apiError{http.StatusMethodNotAllowed, "Method not allowed", r.Method + " " + r.URL.Path})
	})

	return r
}

func (h *Handler) routes(r chi.Router) {
	r.Post("/users", h.register)
	r.Post("/users/login", h.login)
	r.Post("/users/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(h.Guard)

		r.Get("/users", h.currentUser)
		r.Put("/users", h.updateUser)
		r.Delete("/users", h.deleteUser)

		r.Get("/wallets", h.listWallets)
		r.Post("/wallets", h.createWallet)
		r.Get("/wallets/{id}", h.getWallet)
		r.Put("/wallets/{id}", h.updateWallet)
		r.Delete("/wallets/{id}", h.deleteWallet)
	})
}
