package userControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/potteryshop/shop-api/service"
	"github.com/potteryshop/shop-api/token"
)

type SignupInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordInput struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

type EmailInput struct {
	Email string `json:"email"`
}

// POST /signup
func Signup(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "Empty input fields"})
			return
		}

		err := svc.Signup(input.Name, input.Email, input.Password, input.DateOfBirth)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"status": "SUCCESS", "message": "Signup successful. Check your email to verify."})
		case errors.Is(err, service.ErrEmptyFields):
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "Empty input fields"})
		case errors.Is(err, service.ErrUserExists):
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "User already exists"})
		default:
			log.Printf("signup failed: %v", err)
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "Server error"})
		}
	}
}

// GET /verifytoken/:token
func VerifyToken(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		redirect, err := svc.VerifyToken(c.Param("token"))
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				log.Printf("verify token failed: %v", err)
			}
			c.String(http.StatusOK, "Invalid or expired token")
			return
		}
		c.Redirect(http.StatusFound, redirect)
	}
}

// POST /login
func Login(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "Empty input fields"})
			return
		}

		redirect, err := svc.Login(input.Email, input.Password)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"status": "SUCCESS", "message": "Login successful", "redirect": redirect})
		case errors.Is(err, service.ErrEmptyFields):
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "Empty input fields"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "User not found"})
		case errors.Is(err, service.ErrEmailNotVerified):
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "Email not verified"})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "Invalid password"})
		default:
			log.Printf("login failed: %v", err)
			c.JSON(http.StatusOK, gin.H{"status": "FAILED", "message": "Server error"})
		}
	}
}

// POST /forgot-password
func ForgotPassword(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input EmailInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}

		err := svc.ForgotPassword(input.Email)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"msg": "OTP sent to email"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		default:
			log.Printf("forgot password failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		}
	}
}

// POST /reset-password
func ResetPassword(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResetPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
			return
		}

		err := svc.ResetPassword(input.Email, input.OTP, input.NewPassword)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"msg": "Password changed successfully"})
		case errors.Is(err, token.ErrOTPNotRequested):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "OTP not requested"})
		case errors.Is(err, token.ErrOTPExpired):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "OTP expired"})
		case errors.Is(err, token.ErrOTPMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid OTP"})
		default:
			log.Printf("reset password failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		}
	}
}

// POST /subscribe
func Subscribe(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input EmailInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
			return
		}

		if err := svc.Subscribe(input.Email); err != nil {
			if errors.Is(err, service.ErrEmptyFields) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
				return
			}
			log.Printf("subscribe failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending email"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Welcome email sent successfully!"})
	}
}
