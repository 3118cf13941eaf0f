package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteer-portal-api/config"
	"volunteer-portal-api/models"
	"volunteer-portal-api/utils"
)

const resetTokenTTL = 10 * time.Minute

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type resetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ForgotPassword issues a reset token and mails the reset link.
func ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request payload",
		})
		return
	}

	req.Email = utils.SanitizeInput(req.Email)
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid email format",
		})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND delete_at IS NULL", req.Email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to process request",
			})
			return
		}
		// Always return success for non-existing users to avoid email enumeration.
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "If the email exists, a reset link has been sent.",
		})
		return
	}

	now := time.Now()
	token := uuid.NewString()

	// Invalidate earlier tokens before storing the new one.
	if err := config.DB.Model(&models.PasswordReset{}).
		Where("user_id = ? AND used_at IS NULL AND expires_at > ?", user.UserID, now).
		Update("expires_at", now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to prepare reset token",
		})
		return
	}

	reset := models.PasswordReset{
		UserID:    user.UserID,
		Token:     token,
		ExpiresAt: now.Add(resetTokenTTL),
		CreateAt:  now,
	}
	if err := config.DB.Create(&reset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to store reset token",
		})
		return
	}

	if err := sendPasswordResetEmail(user, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to send reset email",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If the email exists, a reset link has been sent.",
	})
}

// ResetPassword consumes a reset token and sets a new password.
func ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request payload",
		})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Passwords do not match",
		})
		return
	}

	now := time.Now()
	var reset models.PasswordReset
	err := config.DB.Where("token = ? AND used_at IS NULL AND expires_at > ?",
		utils.SanitizeInput(req.Token), now).First(&reset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid or expired reset token",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to verify reset token",
		})
		return
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to secure password",
		})
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("user_id = ?", reset.UserID).
		Updates(map[string]interface{}{
			"password":  hashed,
			"update_at": now,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update password",
		})
		return
	}

	if err := config.DB.Model(&models.PasswordReset{}).
		Where("reset_id = ?", reset.ResetID).
		Update("used_at", now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to finalize reset",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password has been reset",
	})
}

func sendPasswordResetEmail(user models.User, token string) error {
	resetURL, err := buildResetURL(os.Getenv("FRONTEND_URL"), token)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>A password reset was requested for your account. "+
			"The link below is valid for %d minutes:</p><p><a href=\"%s\">%s</a></p>"+
			"<p>If you did not request this, you can ignore this email.</p>",
		user.UserFname, int(resetTokenTTL.Minutes()), resetURL, resetURL)

	return config.SendMail([]string{user.Email}, "Password reset", body)
}

func buildResetURL(baseURL, token string) (string, error) {
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid FRONTEND_URL: %w", err)
	}
	u.Path = "/reset-password"
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
