package domain_test

import (
	"strings"
	"testing"

	"github.com/careerhub/ticketing-core/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRSigner_RoundTrip(t *testing.T) {
	signer := domain.NewQRSigner("test-secret")

	payload := signer.Sign("TCKT-20260315-0042", "event-1", "user-1")
	parts := strings.Split(payload, "|")
	require.Len(t, parts, 4)
	assert.Len(t, parts[3], 16)

	claims, err := signer.Verify(payload)
	require.NoError(t, err)
	assert.Equal(t, "TCKT-20260315-0042", claims.TicketID)
	assert.Equal(t, "event-1", claims.EventID)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestQRSigner_TamperedSignature(t *testing.T) {
	signer := domain.NewQRSigner("test-secret")
	payload := signer.Sign("TCKT-20260315-0042", "event-1", "user-1")

	sigStart := len(payload) - 16
	for i := sigStart; i < len(payload); i++ {
		mutated := []byte(payload)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		_, err := signer.Verify(string(mutated))
		assert.ErrorIs(t, err, domain.ErrInvalidCode, "flip at position %d", i)
	}
}

func TestQRSigner_TamperedBody(t *testing.T) {
	signer := domain.NewQRSigner("test-secret")
	payload := signer.Sign("TCKT-20260315-0042", "event-1", "user-1")

	mutated := strings.Replace(payload, "user-1", "user-2", 1)
	_, err := signer.Verify(mutated)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestQRSigner_FieldCount(t *testing.T) {
	signer := domain.NewQRSigner("test-secret")

	for _, payload := range []string{
		"",
		"only-one",
		"two|fields",
		"three|fields|here",
		"five|fields|are|too|many",
	} {
		_, err := signer.Verify(payload)
		assert.ErrorIs(t, err, domain.ErrInvalidCode, "payload %q", payload)
	}
}

func TestQRSigner_DifferentSecrets(t *testing.T) {
	payload := domain.NewQRSigner("secret-a").Sign("t", "e", "u")
	_, err := domain.NewQRSigner("secret-b").Verify(payload)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}
