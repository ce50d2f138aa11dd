package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gearstore/gearstore-api/internal/auth"
	"github.com/gearstore/gearstore-api/internal/models"
	"github.com/gearstore/gearstore-api/internal/store"
)

//
// --- Auth & Profile Handlers ---
//

// RegisterInput defines the JSON for creating an account.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register is the handler for POST /v1/auth/register
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	h.issueSession(c, user, http.StatusCreated)
}

// LoginInput defines the JSON for logging in.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	h.issueSession(c, user, http.StatusOK)
}

// issueSession signs a token and mirrors the session into the keystore, the
// way the storefront keeps it in the device's secure storage. The mirror is
// best-effort.
func (h *Handlers) issueSession(c *gin.Context, user models.User, status int) {
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	if h.Keys != nil {
		if data, err := json.Marshal(user); err == nil {
			if err := h.Keys.Set("userData:"+user.ID, data); err != nil {
				zap.S().Warnw("session mirror failed", "user_id", user.ID, "error", err)
			}
		}
		if err := h.Keys.Set("userToken:"+user.ID, []byte(token)); err != nil {
			zap.S().Warnw("session mirror failed", "user_id", user.ID, "error", err)
		}
	}

	c.JSON(status, gin.H{"token": token, "user": user})
}

// Logout is the handler for POST /v1/auth/logout. Tokens are stateless, so
// this only clears the stored session mirror; the token itself lapses at
// expiry.
func (h *Handlers) Logout(c *gin.Context) {
	id := userID(c)
	if h.Keys != nil {
		_ = h.Keys.Delete("userToken:" + id)
		_ = h.Keys.Delete("userData:" + id)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ForgotPasswordInput defines the JSON for requesting a password reset.
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword is the handler for POST /v1/auth/forgot-password. No mail
// is sent; the mock flow only checks the address exists.
func (h *Handlers) ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !h.Users.Exists(c.Request.Context(), input.Email) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// GetProfile is the handler for GET /v1/profile
func (h *Handlers) GetProfile(c *gin.Context) {
	user, err := h.Users.Get(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfileInput defines the JSON for editing the profile. Omitted
// fields keep their current value.
type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateProfile is the handler for PUT /v1/profile
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.UpdateProfile(c.Request.Context(), userID(c), store.ProfileUpdate{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePasswordInput defines the JSON for changing the password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword is the handler for PUT /v1/profile/password
func (h *Handlers) ChangePassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	err := h.Users.ChangePassword(c.Request.Context(), userID(c), input.CurrentPassword, input.NewPassword)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
