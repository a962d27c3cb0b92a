package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authstarter/config"
	"authstarter/internal/domain/entity"
)

func newTestIssuer(t *testing.T, ttl time.Duration) *jwtIssuer {
	t.Helper()

	cfg := &config.Config{Token: &config.TokenConfig{AccessTTL: ttl}}
	cfg.SecretKey.Access = "test-secret"
	cfg.Env.ServiceName = "authstarter"

	issuer, err := NewJWTIssuer(cfg)
	require.NoError(t, err)

	concrete, ok := issuer.(*jwtIssuer)
	require.True(t, ok)

	return concrete
}

func testPrincipal() *entity.Principal {
	return &entity.Principal{
		AccountID: 42,
		Username:  "john",
		Email:     "john@example.com",
		Roles:     []string{"ROLE_USER"},
	}
}

func TestJWTIssuer_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTIssuer(cfg)
	assert.Error(t, err)
}

func TestJWTIssuer_IssueAndParseRoundTrip(t *testing.T) {
	issuer := newTestIssuer(t, time.Minute)

	token, err := issuer.Issue(testPrincipal())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	accountID, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), accountID)
	assert.Equal(t, "john", claims.Username)
	assert.Equal(t, []string{"ROLE_USER"}, claims.Roles)
	assert.Equal(t, "authstarter", claims.Issuer)
}

func TestJWTIssuer_ClaimsCarryExpiration(t *testing.T) {
	issuer := newTestIssuer(t, time.Minute)

	token, err := issuer.Issue(testPrincipal())
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestJWTIssuer_RejectsExpiredToken(t *testing.T) {
	issuer := newTestIssuer(t, time.Minute)
	issuer.accessTTL = -time.Minute

	token, err := issuer.Issue(testPrincipal())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestJWTIssuer_RejectsTokenSignedWithDifferentSecret(t *testing.T) {
	issuer := newTestIssuer(t, time.Minute)
	other := newTestIssuer(t, time.Minute)
	other.secret = "different-secret"

	token, err := other.Issue(testPrincipal())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}
