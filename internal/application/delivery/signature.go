package delivery

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// SignatureVerifier authenticates webhook payloads with a per-platform
// shared secret.
type SignatureVerifier struct {
	log logger.Logger
}

func NewSignatureVerifier(log logger.Logger) *SignatureVerifier {
	return &SignatureVerifier{log: log}
}

// Verify computes an HMAC-SHA256 hex digest over the raw request body and
// compares it to the supplied signature in constant time. It must run on the
// raw bytes before any JSON parsing: re-serialization can change the byte
// content and break the digest. All failure paths return false, never panic,
// and only a truncated signature prefix is ever logged.
func (v *SignatureVerifier) Verify(body []byte, signature, secret string) bool {
	if signature == "" {
		v.log.Warn("empty signature provided for verification")
		return false
	}
	if secret == "" {
		v.log.Warn("empty webhook secret configured")
		return false
	}
	if len(body) == 0 {
		v.log.Warn("empty payload received for signature verification")
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	if _, err := mac.Write(body); err != nil {
		v.log.Error("signature computation failed", logger.Error(err))
		return false
	}
	computed := hex.EncodeToString(mac.Sum(nil))

	valid := hmac.Equal([]byte(computed), []byte(signature))
	if !valid {
		v.log.Warn("signature verification failed",
			logger.String("expected_prefix", prefix(computed, 10)),
			logger.String("received_prefix", prefix(signature, 10)),
		)
	}
	return valid
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
