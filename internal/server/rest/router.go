package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/snsplatform/internal/logging"
	"github.com/gorilla/mux"
)

// Options configures the middleware chain around the router.
type Options struct {
	FrontendURL    string
	Environment    string
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

// NewHandler builds the complete HTTP handler: routes plus the middleware
// chain (request id, access log, panic recovery, security headers, CORS,
// body and time limits).
func NewHandler(users UserService, media MediaService, logger logging.Logger, opts Options) http.Handler {
	h := &handlers{
		users:       users,
		media:       media,
		logger:      logger,
		environment: opts.Environment,
	}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	router.HandleFunc("/health", h.health).Methods(http.MethodGet)
	router.HandleFunc("/api/test", h.apiTest).Methods(http.MethodGet)

	api := router.PathPrefix("/api/users").Subrouter()
	api.HandleFunc("", h.listUsers).Methods(http.MethodGet)
	api.HandleFunc("", h.createUser).Methods(http.MethodPost)
	// A trailing slash means an empty id, which the service rejects.
	api.HandleFunc("/", h.getUser).Methods(http.MethodGet)
	api.HandleFunc("/", h.updateUser).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/", h.deleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/{id}", h.getUser).Methods(http.MethodGet)
	api.HandleFunc("/{id}", h.updateUser).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/{id}", h.deleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/{id}/profile-image", h.presignProfileImage).Methods(http.MethodPost)

	return chain(router,
		withRequestID,
		withLogging(logger),
		withRecover(logger),
		withSecurityHeaders,
		withCORS(opts.FrontendURL),
		withLimits(opts.MaxBodyBytes, opts.RequestTimeout),
	)
}
