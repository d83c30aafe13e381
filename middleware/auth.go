package middleware

import (
	"net/http"
	"strings"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxStaffID  = "staff_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// RequireAuth validates the Bearer token and stores the staff identity on
// the context. The secret must match the one used when issuing tokens.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "Missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := utils.ParseAccessToken(secret, raw)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxStaffID, claims.StaffID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireManager allows only staff carrying the manager role past. It
// assumes RequireAuth already ran on the route group.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CtxRole)
		if role != models.RoleManager {
			utils.JSONError(c, http.StatusForbidden, "forbidden", "Manager role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffID reads the authenticated staff id set by RequireAuth.
func StaffID(c *gin.Context) uint {
	v, ok := c.Get(CtxStaffID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
