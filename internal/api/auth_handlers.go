package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"gonotes/internal/auth"
)

type authHandlers struct {
	svc    *auth.Service
	logger *zap.Logger
}

func (h *authHandlers) fail(w http.ResponseWriter, err error) {
	failWith(w, h.logger, err)
}

func (h *authHandlers) createAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fullname string `json:"fullname"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, token, err := h.svc.Signup(r.Context(), req.Fullname, req.Email, req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Account created successfully", envelope{"user": user, "accessToken": token})
}

func (h *authHandlers) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Login successful", envelope{"user": user, "accessToken": token})
}

func (h *authHandlers) verifySignupOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.svc.VerifySignupOTP(r.Context(), req.Email, req.OTP); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Email verified successfully", nil)
}

func (h *authHandlers) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.svc.CurrentUser(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "User retrieved successfully", envelope{"user": user})
}

func (h *authHandlers) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Fullname *string `json:"fullname"`
		Email    *string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	otpSent, err := h.svc.UpdateProfile(r.Context(), userID, req.Fullname, req.Email)
	if err != nil {
		h.fail(w, err)
		return
	}
	if otpSent {
		writeOK(w, "OTP sent to new email address", envelope{"otpSent": true})
		return
	}
	writeOK(w, "Profile updated successfully", envelope{"otpSent": false})
}

func (h *authHandlers) verifyChangeEmailOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		OTP string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.svc.VerifyEmailChangeOTP(r.Context(), userID, req.OTP); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Email updated successfully", nil)
}

func (h *authHandlers) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Password changed successfully", nil)
}

func (h *authHandlers) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "OTP sent to your email", nil)
}

func (h *authHandlers) verifyForgotPasswordOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.svc.VerifyResetOTP(r.Context(), req.Email, req.OTP); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "OTP verified", nil)
}

func (h *authHandlers) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Password reset successful", nil)
}
