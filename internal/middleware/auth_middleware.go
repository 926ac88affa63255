package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Gin context keys set by VerifyToken.
const (
	UserIDKey          = "userID"
	UserEmailKey       = "userEmail"
	UserDisplayNameKey = "userDisplayName"
	UserPhotoURLKey    = "userPhotoURL"
	TokenKey           = "authToken"
)

// TokenVerifier is satisfied by *auth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthFailure classifies why a request could not be authenticated.
type AuthFailure int

const (
	// NoToken: the Authorization header is missing or not a Bearer credential.
	NoToken AuthFailure = iota + 1
	// InvalidToken: the identity provider rejected the token.
	InvalidToken
)

func (f AuthFailure) String() string {
	switch f {
	case NoToken:
		return "no_token"
	case InvalidToken:
		return "invalid_token"
	default:
		return "unknown"
	}
}

// AuthError is returned by Authenticate and always maps to 401.
type AuthError struct {
	Reason AuthFailure
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth %s: %v", e.Reason, e.Err)
	}
	return "auth " + e.Reason.String()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Message is the client-facing text. Verification details stay in the logs.
func (e *AuthError) Message() string {
	if e.Reason == NoToken {
		return "Authorization header format must be 'Bearer {token}'"
	}
	return "Invalid or expired authentication token"
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", &AuthError{Reason: NoToken, Err: fmt.Errorf("authorization header is missing")}
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", &AuthError{Reason: NoToken, Err: fmt.Errorf("authorization header is not a bearer token")}
	}
	return token, nil
}

// AuthMiddleware provides Gin middleware for Firebase token authentication.
type AuthMiddleware struct {
	verifier TokenVerifier
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate verifies the bearer token in header and returns its claims.
func (m *AuthMiddleware) Authenticate(ctx context.Context, header string) (*auth.Token, error) {
	idToken, err := BearerToken(header)
	if err != nil {
		return nil, err
	}
	token, err := m.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, &AuthError{Reason: InvalidToken, Err: err}
	}
	return token, nil
}

// VerifyToken rejects unauthenticated requests with 401 and otherwise stores
// the token claims in the Gin context for downstream handlers.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := m.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			var authErr *AuthError
			if !errors.As(err, &authErr) {
				authErr = &AuthError{Reason: InvalidToken, Err: err}
			}
			m.logger.Debug("request rejected",
				zap.String("reason", authErr.Reason.String()),
				zap.Error(authErr.Err),
				zap.String("path", c.Request.URL.Path),
			)
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(authErr.Message()))
			return
		}

		c.Set(UserIDKey, token.UID)
		c.Set(TokenKey, token)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set(UserEmailKey, email)
		}
		if name, ok := token.Claims["name"].(string); ok {
			c.Set(UserDisplayNameKey, name)
		}
		if picture, ok := token.Claims["picture"].(string); ok {
			c.Set(UserPhotoURLKey, picture)
		}

		c.Next()
	}
}

// ClaimsFromContext returns the verified token, if VerifyToken ran.
func ClaimsFromContext(c *gin.Context) (*auth.Token, bool) {
	v, ok := c.Get(TokenKey)
	if !ok {
		return nil, false
	}
	token, ok := v.(*auth.Token)
	return token, ok
}
