package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/mverbeke/campushub/internal/app/auth"
	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/pkg/auth"
)

const principalKey = "principal"

// AuthMiddleware establishes the request principal from the bearer token.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Principal validates the bearer token when one is present and stores the
// resulting principal on the context. Requests without a token continue as
// anonymous; a token that fails validation is rejected here, since a broken
// token is an error rather than anonymity.
func (m *AuthMiddleware) Principal() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(principalKey, appauth.Anonymous)
			c.Next()
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid authorization header")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(principalKey, appauth.Principal{
			Authenticated: true,
			Subject:       claims.AccountID,
		})
		c.Next()
	}
}

// RequireAuth rejects anonymous requests. Runs after Principal.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetPrincipal(c).Authenticated {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the request principal, anonymous when none was set.
func GetPrincipal(c *gin.Context) appauth.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(appauth.Principal); ok {
			return p
		}
	}
	return appauth.Anonymous
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
