package webhook_test

import (
	"testing"

	"github.com/agencykit/go-access/webhook"
	"github.com/stretchr/testify/assert"
)

func TestSignatureVerifier_Verify(t *testing.T) {
	secret := "shared-webhook-secret"
	payload := []byte(`{"type":"invoice.paid","amount":1200}`)

	verifier := webhook.NewSignatureVerifier(secret, nil)

	signature, err := verifier.Sign(payload)
	assert.NoError(t, err)

	t.Run("accepts a correct signature", func(t *testing.T) {
		assert.True(t, verifier.Verify(payload, signature))
	})

	t.Run("accepts the sha256 prefixed form", func(t *testing.T) {
		assert.True(t, verifier.Verify(payload, "sha256="+signature))
	})

	t.Run("accepts surrounding whitespace", func(t *testing.T) {
		assert.True(t, verifier.Verify(payload, "  "+signature+"  "))
	})

	t.Run("rejects a signature over different bytes", func(t *testing.T) {
		assert.False(t, verifier.Verify([]byte(`{"type":"invoice.paid","amount":9999}`), signature))
	})

	t.Run("rejects a signature from another secret", func(t *testing.T) {
		other := webhook.NewSignatureVerifier("different-secret", nil)
		otherSig, err := other.Sign(payload)
		assert.NoError(t, err)

		assert.False(t, verifier.Verify(payload, otherSig))
	})

	t.Run("rejects an absent signature", func(t *testing.T) {
		assert.False(t, verifier.Verify(payload, ""))
	})

	t.Run("rejects a malformed signature", func(t *testing.T) {
		assert.False(t, verifier.Verify(payload, "not-hex-at-all"))
	})

	t.Run("rejects a truncated signature", func(t *testing.T) {
		assert.False(t, verifier.Verify(payload, signature[:16]))
	})
}

func TestSignatureVerifier_SkipMode(t *testing.T) {
	verifier := webhook.NewSignatureVerifier("", nil)

	assert.True(t, verifier.SkipsVerification())

	t.Run("trusts any payload", func(t *testing.T) {
		assert.True(t, verifier.Verify([]byte("anything"), ""))
		assert.True(t, verifier.Verify([]byte("anything"), "bogus"))
		assert.NoError(t, verifier.Check([]byte("anything"), ""))
	})

	t.Run("cannot sign", func(t *testing.T) {
		_, err := verifier.Sign([]byte("anything"))
		assert.Error(t, err)
	})
}

func TestNewRequiredSignatureVerifier(t *testing.T) {
	t.Run("refuses an empty secret", func(t *testing.T) {
		verifier, err := webhook.NewRequiredSignatureVerifier("", nil)

		assert.ErrorIs(t, err, webhook.ErrSecretRequired)
		assert.Nil(t, verifier)
	})

	t.Run("builds a verifying instance with a secret", func(t *testing.T) {
		verifier, err := webhook.NewRequiredSignatureVerifier("secret", nil)

		assert.NoError(t, err)
		assert.NotNil(t, verifier)
		assert.False(t, verifier.SkipsVerification())
	})
}

func TestSignatureVerifier_Check(t *testing.T) {
	verifier := webhook.NewSignatureVerifier("secret", nil)
	payload := []byte(`{"type":"lead.created"}`)

	signature, err := verifier.Sign(payload)
	assert.NoError(t, err)

	t.Run("nil on match", func(t *testing.T) {
		assert.NoError(t, verifier.Check(payload, signature))
	})

	t.Run("sentinel on mismatch", func(t *testing.T) {
		err := verifier.Check(payload, "deadbeef")
		assert.ErrorIs(t, err, webhook.ErrSignatureRejected)
	})
}
