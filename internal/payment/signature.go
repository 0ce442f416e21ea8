// Package payment is the bridge to the external payment gateway: it creates
// orders through the gateway's API and verifies the signatures the gateway
// attaches to payment callbacks.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the hex-encoded HMAC-SHA256 of "orderID|paymentID" under the
// gateway's shared secret.  This is the signature scheme Razorpay uses for
// checkout callbacks.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature matches the expected HMAC for
// the given order and payment ids.  The comparison is constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
