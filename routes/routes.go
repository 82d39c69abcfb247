package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/potteryshop/shop-api/service"
)

// SetupRoutes is the single entry‐point that wires up Auth and Cart route groups.
func SetupRoutes(r *gin.Engine, authSvc *service.AuthService, cartSvc *service.CartService) {
	// 1️⃣ Auth + account routes
	SetupAuthRoutes(r, authSvc)

	// 2️⃣ Cart routes
	SetupCartRoutes(r, cartSvc)
}
