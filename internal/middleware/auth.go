package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inaaqc/clinical-api/internal/handler"
	"github.com/inaaqc/clinical-api/internal/service/auth"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

const ContextUserKey = "current_user"

type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the bearer token and resolves its user from storage.
// The user record is looked up fresh on every request, so a deactivated
// account is rejected even while its token is still within its lifetime.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		current, err := m.authService.CurrentUser(c.Request.Context(), parts[1])
		if err != nil {
			if errors.IsCode(err, errors.ErrForbidden) {
				c.JSON(http.StatusForbidden, handler.NewErrorResponse("user account is inactive"))
			} else {
				c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("could not validate credentials"))
			}
			c.Abort()
			return
		}

		c.Set(ContextUserKey, current)
		c.Next()
	}
}
