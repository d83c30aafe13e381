package controllers

import (
	"net/http"
	"time"

	"frontdesk-backend/middleware"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc   *services.AuthService
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthController(svc *services.AuthService, secret string, ttl time.Duration) *AuthController {
	return &AuthController{AuthSvc: svc, JWTSecret: secret, TokenTTL: ttl}
}

// Login verifies staff credentials and hands back a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	staff, err := ac.AuthSvc.Authenticate(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.NewAccessToken(ac.JWTSecret, staff.ID, staff.Username, staff.Role, ac.TokenTTL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":      token.Token,
		"expires_at": token.Exp.UTC().Format(time.RFC3339),
		"staff": gin.H{
			"id":        staff.ID,
			"full_name": staff.FullName,
			"username":  staff.Username,
			"role":      staff.Role,
		},
	})
}

// Me returns the profile behind the presented token.
func (ac *AuthController) Me(c *gin.Context) {
	staff, err := ac.AuthSvc.GetProfile(middleware.StaffID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":        staff.ID,
		"full_name": staff.FullName,
		"username":  staff.Username,
		"role":      staff.Role,
	})
}
