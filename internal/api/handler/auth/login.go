package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"akshara/clinic-queue/internal/api/request"
	"akshara/clinic-queue/internal/constant"
)

// Login godoc
// @Summary      Login
// @Description  Exchange credentials for a signed token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body request.LoginRequest true "Credentials"
// @Success      200 {object} map[string]interface{} "Token and user"
// @Failure      400 {object} map[string]string "Missing credentials"
// @Failure      401 {object} map[string]string "Invalid credentials"
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.authService.Login(c, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, constant.ValidationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing credentials"})
		case errors.Is(err, constant.InvalidCredentialsErr):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
