package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/finance-flow/internal/app"
	"github.com/MKhiriev/finance-flow/internal/ratelimit"
	"github.com/MKhiriev/finance-flow/internal/validators"
	"github.com/MKhiriev/finance-flow/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request, in input) {
	credentials := models.Credentials{
		Email:    deref(in.fields.SanitizeEmail(validators.FieldEmail)),
		Password: in.fields.GetString(validators.FieldPassword),
		Username: deref(in.fields.Sanitize(validators.FieldUsername)),
	}

	result, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, app.MsgRegistrationSuccessful, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, in input) {
	credentials := models.Credentials{
		Email:    deref(in.fields.SanitizeEmail(validators.FieldEmail)),
		Password: in.fields.GetString(validators.FieldPassword),
	}

	result, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		if errors.Is(err, ratelimit.ErrRateLimitExceeded) && h.metrics != nil {
			h.metrics.RecordRateLimitHit("/auth/login")
		}
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgLoginSuccessful, result)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request, in input) {
	user, err := h.services.AuthService.Me(r.Context(), in.userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgUserFound, map[string]any{"user": user})
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request, in input) {
	change := models.PasswordChange{
		UserID:          in.userID,
		CurrentPassword: in.fields.GetString(validators.FieldCurrentPassword),
		NewPassword:     in.fields.GetString(validators.FieldNewPassword),
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), change); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgPasswordChanged, nil)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
