package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	authService "github.com/jwalitptl/clinic-booking-api/internal/service/auth"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
	"github.com/jwalitptl/clinic-booking-api/pkg/httputil"
)

const (
	ContextUser      = "current_user"
	ContextSessionID = "session_id"
)

type AuthMiddleware struct {
	authSvc *authService.Service
}

func NewAuthMiddleware(authSvc *authService.Service) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// Authenticate resolves the bearer token to a user and stores it in the
// gin context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httputil.RespondWithError(c, errors.Unauthorized("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondWithError(c, errors.Unauthorized("invalid authorization format"))
			c.Abort()
			return
		}

		user, claims, err := m.authSvc.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			httputil.RespondWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextSessionID, claims.SessionID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user from the gin context, or
// nil outside authenticated routes.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
