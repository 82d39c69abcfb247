package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/potteryshop/shop-api/controllers/user"
	"github.com/potteryshop/shop-api/service"
)

// SetupAuthRoutes registers signup, verification, login and
// password-reset endpoints. All are public.
func SetupAuthRoutes(r *gin.Engine, svc *service.AuthService) {
	r.POST("/signup", userControllers.Signup(svc))                  // POST /signup
	r.GET("/verifytoken/:token", userControllers.VerifyToken(svc))  // GET /verifytoken/:token
	r.POST("/login", userControllers.Login(svc))                    // POST /login
	r.POST("/forgot-password", userControllers.ForgotPassword(svc)) // POST /forgot-password
	r.POST("/reset-password", userControllers.ResetPassword(svc))   // POST /reset-password
	r.POST("/subscribe", userControllers.Subscribe(svc))            // POST /subscribe
}
