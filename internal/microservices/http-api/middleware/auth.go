package middleware

import (
	"net/http"
	"strings"

	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/service"
	"exlibris/internal/shared"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware reads an optional bearer token. Requests without an
// Authorization header continue anonymously; a header that is malformed or
// carries an invalid token is rejected with 401.
func AuthMiddleware(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// format: "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		identity, err := tokens.Validate(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests before the handler reads anything.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Identity(c).Authenticated() {
			abortUnauthorized(c, "authentication required")
			return
		}
		c.Next()
	}
}

// SetIdentity stores the caller for handlers further down the chain.
func SetIdentity(c *gin.Context, identity shared.Identity) {
	c.Set(identityKey, identity)
	c.Set("userID", identity.UserID)
}

// Identity is the caller of the request, zero for anonymous requests.
func Identity(c *gin.Context) shared.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return shared.Identity{}
	}
	identity, _ := v.(shared.Identity)
	return identity
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Error: msg})
}
