package midtrans

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// SignatureVerifier checks the keyed hash Midtrans attaches to every
// notification: sha512(order_id + status_code + gross_amount + server key).
// It implements domain.NotificationVerifier.
type SignatureVerifier struct {
	serverKey string
}

func NewSignatureVerifier(serverKey string) *SignatureVerifier {
	return &SignatureVerifier{serverKey: serverKey}
}

func (v *SignatureVerifier) Verify(orderID, statusCode, grossAmount, signatureKey string) bool {
	expected := v.Expected(orderID, statusCode, grossAmount)
	supplied := strings.ToLower(strings.TrimSpace(signatureKey))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) == 1
}

// Expected recomputes the signature for a notification's identifying
// fields. The gross amount is normalized first so "50000", "50000.0" and
// "50000.00" all hash identically on both the creation and verification
// path.
func (v *SignatureVerifier) Expected(orderID, statusCode, grossAmount string) string {
	payload := orderID + statusCode + NormalizeGrossAmount(grossAmount) + v.serverKey
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// NormalizeGrossAmount renders any numeric representation of the gross
// amount as an integer string in the smallest currency unit. Non-numeric
// input is passed through trimmed; the signature check will reject it.
func NormalizeGrossAmount(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return trimmed
	}
	return strconv.FormatInt(int64(math.Round(parsed)), 10)
}
