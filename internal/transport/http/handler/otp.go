package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-checkout-api/internal/pkg/validate"
)

// otpService is the subset of the OTP application service the handler needs.
// Defined here (point of use) so tests can inject a fake.
type otpService interface {
	Issue(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
}

// OTPHandler handles the send-otp and verify-otp endpoints.
type OTPHandler struct {
	svc    otpService
	logger *slog.Logger
}

func NewOTPHandler(svc otpService, logger *slog.Logger) *OTPHandler {
	return &OTPHandler{svc: svc, logger: logger.With("component", "otp_handler")}
}

type sendOTPRequest struct {
	Email string `json:"email" validate:"required"`
}

// POST /api/send-otp
func (h *OTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AckEnvelope{Message: "invalid request body"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AckEnvelope{Message: err.Error()})
		return
	}

	if err := h.svc.Issue(r.Context(), req.Email); err != nil {
		h.logger.ErrorContext(r.Context(), "send otp", "email", req.Email, "error", err)
		writeJSON(w, statusFor(err), AckEnvelope{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, AckEnvelope{Success: true, Message: "OTP sent to your email"})
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	// OTP may arrive as a JSON string or number; it is normalized to a
	// canonical string before comparison.
	OTP any `json:"otp" validate:"required"`
}

// POST /api/verify-otp
func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AckEnvelope{Message: "invalid request body"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AckEnvelope{Message: err.Error()})
		return
	}

	if err := h.svc.Verify(r.Context(), req.Email, normalizeOTP(req.OTP)); err != nil {
		h.logger.WarnContext(r.Context(), "verify otp", "email", req.Email, "error", err)
		writeJSON(w, statusFor(err), AckEnvelope{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, AckEnvelope{Success: true, Message: "Email verified successfully"})
}

// normalizeOTP canonicalizes the loosely typed otp field to a string.
func normalizeOTP(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
