package handler

import "net/http"

// ConfigHandler exposes the public checkout configuration the storefront
// needs to open Razorpay Checkout. Only the key id is public; the secret
// never leaves the server.
type ConfigHandler struct {
	razorpayKeyID string
}

func NewConfigHandler(razorpayKeyID string) *ConfigHandler {
	return &ConfigHandler{razorpayKeyID: razorpayKeyID}
}

func (h *ConfigHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"razorpayKeyId": h.razorpayKeyID})
}
