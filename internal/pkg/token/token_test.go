package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ttl time.Duration) Config {
	return Config{
		Secret:   "test-secret",
		Issuer:   "catalog-service",
		Audience: "catalog-admin",
		TTL:      ttl,
	}
}

func TestIssueAndVerify(t *testing.T) {
	m, err := NewManager(testConfig(time.Hour))
	require.NoError(t, err)

	signed, jti, err := m.Issue("admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, jti)

	subject, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", subject)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m, err := NewManager(testConfig(time.Nanosecond))
	require.NoError(t, err)

	signed, _, err := m.Issue("admin@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = m.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := NewManager(testConfig(time.Hour))
	require.NoError(t, err)

	other := testConfig(time.Hour)
	other.Secret = "different-secret"
	verifier, err := NewManager(other)
	require.NoError(t, err)

	signed, _, err := issuer.Issue("admin@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestNewManagerRequiresSecret(t *testing.T) {
	_, err := NewManager(Config{})
	assert.Error(t, err)
}
