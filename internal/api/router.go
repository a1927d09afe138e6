package api

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gonotes/internal/auth"
	"gonotes/internal/models"
)

// NewRouter wires every endpoint, the bearer middleware on protected routes,
// and the logging and CORS layers around the whole tree.
func NewRouter(svc *auth.Service, notes models.NoteStore, tokens models.TokenManager, logger *zap.Logger) http.Handler {
	ah := &authHandlers{svc: svc, logger: logger}
	nh := &noteHandlers{notes: notes, logger: logger}

	router := mux.NewRouter()

	// Public routes.
	router.HandleFunc("/create-account", ah.createAccount).Methods(http.MethodPost)
	router.HandleFunc("/login", ah.login).Methods(http.MethodPost)
	router.HandleFunc("/verify-signup-otp", ah.verifySignupOTP).Methods(http.MethodPost)
	router.HandleFunc("/forgot-password", ah.forgotPassword).Methods(http.MethodPost)
	router.HandleFunc("/verify-forgot-password-otp", ah.verifyForgotPasswordOTP).Methods(http.MethodPost)
	router.HandleFunc("/reset-password", ah.resetPassword).Methods(http.MethodPost)

	// Routes requiring a bearer token.
	protected := router.NewRoute().Subrouter()
	protected.Use(Authenticate(tokens))
	protected.HandleFunc("/get-user", ah.getUser).Methods(http.MethodGet)
	protected.HandleFunc("/update-profile", ah.updateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/verify-change-email-otp", ah.verifyChangeEmailOTP).Methods(http.MethodPost)
	protected.HandleFunc("/change-password", ah.changePassword).Methods(http.MethodPut)
	protected.HandleFunc("/add-note", nh.addNote).Methods(http.MethodPost)
	protected.HandleFunc("/edit-note/{id}", nh.editNote).Methods(http.MethodPut)
	protected.HandleFunc("/update-note-pinned/{id}", nh.updatePinned).Methods(http.MethodPut)
	protected.HandleFunc("/get-all-notes", nh.getAllNotes).Methods(http.MethodGet)
	protected.HandleFunc("/search-notes", nh.searchNotes).Methods(http.MethodGet)
	protected.HandleFunc("/delete-note/{id}", nh.deleteNote).Methods(http.MethodDelete)

	// The single-page client may be served from anywhere.
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return handlers.LoggingHandler(os.Stdout, cors(RequestID(router)))
}
