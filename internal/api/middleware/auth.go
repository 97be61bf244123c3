package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-dao/internal/api/shared/errors"
	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	AUTH_ROLES_KEY   contextKey = "auth_roles"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"

	ROLE_ADMIN = "admin"

	// ACTOR_HEADER names the identity an API key caller acts as, recorded in the journal
	ACTOR_HEADER = "X-Actor"
	// DEFAULT_APIKEY_ACTOR is the identity of API key callers that do not send ACTOR_HEADER
	DEFAULT_APIKEY_ACTOR = "admin"
)

// Claims are the JWT claims accepted by the API. The subject is the caller's identity.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string // "jwt" or "apikey"
	Claims      *Claims
	AuthSubject string
	Roles       []string
	Error       error
}

// Authenticator validates bearer tokens and API keys
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   map[string]bool
}

// NewAuthenticator parses the configured public key once. Without a key only API keys are accepted.
func NewAuthenticator(cfg config.AuthConfig) (*Authenticator, error) {
	a := &Authenticator{apiKeys: make(map[string]bool)}
	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys[key] = true
		}
	}

	if cfg.JWTPublicKey != "" {
		publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		a.publicKey = publicKey
	}
	return a, nil
}

// Authenticate validates the Authorization header and returns the authentication result
func (a *Authenticator) Authenticate(authHeader string, actorHeader string) AuthResult {
	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	authType := strings.ToLower(parts[0])
	credentials := parts[1]

	switch authType {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			result.Error = err
			return result
		}
		if claims.Subject == "" {
			result.Error = errors.New("token has no subject")
			return result
		}
		result.Success = true
		result.AuthType = AUTH_TYPE_JWT
		result.Claims = claims
		result.AuthSubject = claims.Subject
		result.Roles = claims.Roles

	case "apikey":
		if err := a.validateAPIKey(credentials); err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AUTH_TYPE_APIKEY
		result.AuthSubject = lo.Ternary(actorHeader != "", actorHeader, DEFAULT_APIKEY_ACTOR)
		result.Roles = []string{ROLE_ADMIN}

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", authType)
		return result
	}

	return result
}

// Auth returns a gin middleware for authentication
// It supports both JWT (Bearer token) and API Key authentication
func Auth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := a.Authenticate(c.GetHeader("Authorization"), strings.TrimSpace(c.GetHeader(ACTOR_HEADER)))

		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apiErr})
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		c.Set(string(AUTH_ROLES_KEY), result.Roles)
		if result.Claims != nil {
			c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		}
		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", result.AuthType),
			zap.String("subject", result.AuthSubject),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apierrors.NewForbiddenError("Admin role required")})
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated identity of the caller
func Actor(c *gin.Context) string {
	return c.GetString(string(AUTH_SUBJECT_KEY))
}

// IsAdmin reports whether the caller holds the admin role
func IsAdmin(c *gin.Context) bool {
	return lo.Contains(c.GetStringSlice(string(AUTH_ROLES_KEY)), ROLE_ADMIN)
}

// validateJWT validates an RS256 token and returns its claims
func (a *Authenticator) validateJWT(tokenString string) (*Claims, error) {
	if a.publicKey == nil {
		return nil, errors.New("JWT public key not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

// validateAPIKey validates an API key
func (a *Authenticator) validateAPIKey(apiKey string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}

	if !a.apiKeys[apiKey] {
		return errors.New("invalid API key")
	}

	return nil
}
