package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Compute returns the hex-encoded HMAC-SHA256 over "orderID|paymentID" using
// the gateway shared secret. This matches Razorpay's documented
// callback-verification contract: the pipe join is order-sensitive and the
// inputs are gateway-issued identifiers that never contain a literal pipe.
func Compute(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares the claimed signature against the recomputed one in
// constant time.
func Verify(orderID, paymentID, secret, claimed string) bool {
	expected := Compute(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(claimed))
}
