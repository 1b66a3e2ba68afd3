package handler

import (
	"encoding/json"
	"net/http"
)

// AckEnvelope is the response wrapper for the OTP endpoints.
type AckEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PaymentEnvelope is the response wrapper for payment verification. Verified
// is set when the payment authenticated but a later step failed, so the
// storefront can tell "retry payment" apart from "contact support".
type PaymentEnvelope struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Verified *bool  `json:"payment_verified,omitempty"`
}

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
