package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrSignatureRejected is returned when a secret is configured and the
// supplied signature is absent, malformed, or does not match the payload
var ErrSignatureRejected = errors.New("webhook signature rejected")

// ErrSecretRequired is returned at construction when signatures are
// mandatory but no secret was provided
var ErrSecretRequired = errors.New("webhook secret is required")

// Logger mirrors the root package logger without importing it
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// SignatureVerifier checks inbound payload authenticity with HMAC-SHA256
// over the exact raw bytes received. An empty secret puts the verifier in
// skip mode: every payload is trusted. That is an operational escape hatch
// for development, not a security default, and it is logged loudly at
// construction.
type SignatureVerifier struct {
	secret []byte
	logger Logger
}

// NewSignatureVerifier builds a verifier for the given shared secret
func NewSignatureVerifier(secret string, logger Logger) *SignatureVerifier {
	if logger == nil {
		logger = noopLogger{}
	}

	v := &SignatureVerifier{secret: []byte(secret), logger: logger}

	if v.SkipsVerification() {
		logger.Warn("webhook signature verification DISABLED: no secret configured")
	}

	return v
}

// NewRequiredSignatureVerifier fails closed: it refuses to construct a
// verifier without a secret
func NewRequiredSignatureVerifier(secret string, logger Logger) (*SignatureVerifier, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	return NewSignatureVerifier(secret, logger), nil
}

// SkipsVerification reports whether the verifier is in trust-all mode
func (v *SignatureVerifier) SkipsVerification() bool {
	return len(v.secret) == 0
}

// Verify reports whether the supplied hex signature matches the payload.
// With no secret configured it always returns true (skip mode). With a
// secret configured, an absent or malformed signature is a failure, never a
// skip. The comparison is constant time.
func (v *SignatureVerifier) Verify(payload []byte, suppliedSignature string) bool {
	if v.SkipsVerification() {
		return true
	}

	suppliedSignature = strings.TrimPrefix(strings.TrimSpace(suppliedSignature), "sha256=")
	if suppliedSignature == "" {
		return false
	}

	supplied, err := hex.DecodeString(suppliedSignature)
	if err != nil {
		v.logger.Debug("webhook signature is not valid hex")
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	expected := mac.Sum(nil)

	return hmac.Equal(expected, supplied)
}

// Check is the error-returning form of Verify for transport handlers that
// need to distinguish rejection from processing failures
func (v *SignatureVerifier) Check(payload []byte, suppliedSignature string) error {
	if !v.Verify(payload, suppliedSignature) {
		return ErrSignatureRejected
	}
	return nil
}

// Sign computes the hex HMAC-SHA256 signature for a payload. Used by tests
// and by outbound deliveries to partners that share the same secret.
func (v *SignatureVerifier) Sign(payload []byte) (string, error) {
	if v.SkipsVerification() {
		return "", fmt.Errorf("cannot sign without a configured secret")
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil)), nil
}
