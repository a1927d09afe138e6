package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"gonotes/internal/models"
)

// envelope is the response shape every endpoint returns: an error flag, a
// human-readable message and any endpoint-specific payload.
type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes a failure envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"error": true, "message": message})
}

// writeOK writes a success envelope merging in any payload fields.
func writeOK(w http.ResponseWriter, message string, payload envelope) {
	body := envelope{"error": false, "message": message}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// statusAndMessage maps a known domain failure to its HTTP status and client
// message. The second return is false for unrecognized errors.
func statusAndMessage(err error) (int, string, bool) {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrNoChanges),
		errors.Is(err, models.ErrNoPendingChange):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, models.ErrAlreadyExists):
		return http.StatusBadRequest, "User already exists", true
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "Not found", true
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, models.ErrInvalidOTP):
		return http.StatusBadRequest, "Invalid or expired OTP", true
	case errors.Is(err, models.ErrMailUnreachable):
		return http.StatusBadRequest, "Could not send verification email", true
	case errors.Is(err, models.ErrTokenInvalid), errors.Is(err, models.ErrTokenExpired):
		return http.StatusUnauthorized, "Unauthorized", true
	}
	return 0, "", false
}

// failWith translates an error into the response envelope. Anything outside
// the known taxonomy becomes an internal error: logged, never leaked.
func failWith(w http.ResponseWriter, logger *zap.Logger, err error) {
	if status, msg, ok := statusAndMessage(err); ok {
		writeError(w, status, msg)
		return
	}
	logger.Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
