package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"discount-club.backend/internal/domain/entities"
	"discount-club.backend/pkg/jwt"
	"discount-club.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionIDHeader carries a server-side session id as an alternative
	// to a bearer token
	SessionIDHeader = "X-Session-ID"
	// PrincipalKey is the context key for the resolved principal
	PrincipalKey = "principal"
)

// PrincipalMiddleware resolves the acting principal from either a bearer
// JWT or a server-side session. Credential issuance happens in the external
// auth service; this only turns an issued credential into a Principal.
func PrincipalMiddleware(jwtService *jwt.JWTService, sessions *redis.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader(AuthorizationHeader); authHeader != "" {
			if !strings.HasPrefix(authHeader, BearerPrefix) {
				abortUnauthenticated(c, "Invalid authorization format. Use: Bearer <token>")
				return
			}

			claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, BearerPrefix))
			if err != nil {
				if err == jwt.ErrExpiredToken {
					abortUnauthenticated(c, "Token has expired")
					return
				}
				abortUnauthenticated(c, "Invalid token")
				return
			}

			principal := &entities.Principal{
				ID:       claims.PrincipalID,
				Type:     entities.PrincipalType(claims.PrincipalType),
				IsGlobal: claims.IsGlobal,
			}
			if claims.TenantID != "" {
				principal.TenantID = null.StringFrom(claims.TenantID)
			}
			c.Set(PrincipalKey, principal)
			c.Next()
			return
		}

		if sessionID := c.GetHeader(SessionIDHeader); sessionID != "" && sessions != nil {
			data, err := sessions.GetSession(c.Request.Context(), sessionID)
			if err != nil {
				abortUnauthenticated(c, "Invalid or expired session")
				return
			}

			principalID, err := uuid.Parse(data.PrincipalID)
			if err != nil {
				abortUnauthenticated(c, "Invalid or expired session")
				return
			}

			principal := &entities.Principal{
				ID:       principalID,
				Type:     entities.PrincipalType(data.PrincipalType),
				IsGlobal: data.IsGlobal,
			}
			if data.TenantID != "" {
				principal.TenantID = null.StringFrom(data.TenantID)
			}
			c.Set(PrincipalKey, principal)
			c.Next()
			return
		}

		abortUnauthenticated(c, "Authorization required")
	}
}

// GetPrincipal gets the resolved principal from context
func GetPrincipal(c *gin.Context) (*entities.Principal, bool) {
	v, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*entities.Principal)
	return p, ok
}

// RequirePrincipalType creates a middleware that requires one of the given
// principal types; global principals always pass.
func RequirePrincipalType(types ...entities.PrincipalType) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			abortUnauthenticated(c, "Authorization required")
			return
		}
		if p.IsGlobal {
			c.Next()
			return
		}

		for _, t := range types {
			if p.Type == t {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
	})
}
