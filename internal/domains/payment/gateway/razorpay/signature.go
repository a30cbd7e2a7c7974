package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GenerateSignature computes hex(HMAC-SHA256(intentID + "|" + paymentID))
// keyed with the account secret. This is the scheme Razorpay uses for
// checkout callbacks.
func GenerateSignature(intentID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(intentID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a callback signature in constant time.
func VerifySignature(intentID, paymentID, signature, secret string) bool {
	expected := GenerateSignature(intentID, paymentID, secret)
	return hmac.Equal([]byte(strings.ToLower(signature)), []byte(expected))
}
