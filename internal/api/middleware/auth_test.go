package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testKeys struct {
	private   *rsa.PrivateKey
	publicPEM string
}

func newTestKeys(t *testing.T) testKeys {
	private, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&private.PublicKey)
	require.NoError(t, err)

	return testKeys{
		private:   private,
		publicPEM: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	}
}

func (k testKeys) sign(t *testing.T, claims Claims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k.private)
	require.NoError(t, err)
	return token
}

func claimsFor(subject string, ttl time.Duration, roles ...string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Roles: roles,
	}
}

func TestNewAuthenticatorRejectsInvalidKey(t *testing.T) {
	_, err := NewAuthenticator(config.AuthConfig{JWTPublicKey: "not a pem"})
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	keys := newTestKeys(t)
	auth, err := NewAuthenticator(config.AuthConfig{
		JWTPublicKey: keys.publicPEM,
		APIKeys:      []string{"key-1", ""},
	})
	require.NoError(t, err)

	t.Run("bearer token", func(t *testing.T) {
		token := keys.sign(t, claimsFor("alice", time.Hour, ROLE_ADMIN))

		result := auth.Authenticate("Bearer "+token, "")
		require.True(t, result.Success, result.Error)
		assert.Equal(t, AUTH_TYPE_JWT, result.AuthType)
		assert.Equal(t, "alice", result.AuthSubject)
		assert.Equal(t, []string{ROLE_ADMIN}, result.Roles)
	})

	t.Run("bearer token ignores the actor header", func(t *testing.T) {
		token := keys.sign(t, claimsFor("alice", time.Hour))

		result := auth.Authenticate("Bearer "+token, "mallory")
		require.True(t, result.Success)
		assert.Equal(t, "alice", result.AuthSubject)
		assert.Empty(t, result.Roles)
	})

	t.Run("expired token", func(t *testing.T) {
		token := keys.sign(t, claimsFor("alice", -time.Minute))

		result := auth.Authenticate("Bearer "+token, "")
		assert.False(t, result.Success)
		assert.Error(t, result.Error)
	})

	t.Run("token without expiry", func(t *testing.T) {
		token := keys.sign(t, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}})

		result := auth.Authenticate("Bearer "+token, "")
		assert.False(t, result.Success)
	})

	t.Run("token without subject", func(t *testing.T) {
		token := keys.sign(t, claimsFor("", time.Hour))

		result := auth.Authenticate("Bearer "+token, "")
		assert.False(t, result.Success)
		assert.EqualError(t, result.Error, "token has no subject")
	})

	t.Run("token signed by another key", func(t *testing.T) {
		other := newTestKeys(t)
		token := other.sign(t, claimsFor("alice", time.Hour))

		result := auth.Authenticate("Bearer "+token, "")
		assert.False(t, result.Success)
	})

	t.Run("api key acts as admin", func(t *testing.T) {
		result := auth.Authenticate("ApiKey key-1", "ops-bot")
		require.True(t, result.Success)
		assert.Equal(t, AUTH_TYPE_APIKEY, result.AuthType)
		assert.Equal(t, "ops-bot", result.AuthSubject)
		assert.Equal(t, []string{ROLE_ADMIN}, result.Roles)
	})

	t.Run("api key without actor header", func(t *testing.T) {
		result := auth.Authenticate("apikey key-1", "")
		require.True(t, result.Success)
		assert.Equal(t, DEFAULT_APIKEY_ACTOR, result.AuthSubject)
	})

	t.Run("invalid api key", func(t *testing.T) {
		result := auth.Authenticate("ApiKey key-2", "")
		assert.False(t, result.Success)
		assert.EqualError(t, result.Error, "invalid API key")
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.False(t, auth.Authenticate("", "").Success)
		assert.False(t, auth.Authenticate("Bearer", "").Success)
		assert.False(t, auth.Authenticate("Basic dXNlcjpwYXNz", "").Success)
	})
}

func TestAuthenticateWithoutPublicKey(t *testing.T) {
	auth, err := NewAuthenticator(config.AuthConfig{})
	require.NoError(t, err)

	result := auth.Authenticate("Bearer abc", "")
	assert.False(t, result.Success)
	assert.EqualError(t, result.Error, "JWT public key not configured")

	result = auth.Authenticate("ApiKey abc", "")
	assert.EqualError(t, result.Error, "no API keys configured")
}

func TestAuthAndRequireAdmin(t *testing.T) {
	keys := newTestKeys(t)
	auth, err := NewAuthenticator(config.AuthConfig{JWTPublicKey: keys.publicPEM})
	require.NoError(t, err)

	router := gin.New()
	router.Use(Auth(auth))
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, Actor(c))
	})
	router.POST("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	serve := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	member := keys.sign(t, claimsFor("alice", time.Hour))
	admin := keys.sign(t, claimsFor("root", time.Hour, ROLE_ADMIN))

	w := serve(http.MethodGet, "/whoami", member)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(http.MethodGet, "/whoami", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(http.MethodPost, "/admin", member).Code)
	assert.Equal(t, http.StatusNoContent, serve(http.MethodPost, "/admin", admin).Code)
}
