package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/potteryshop/shop-api/controllers/cart"
	"github.com/potteryshop/shop-api/service"
)

// SetupCartRoutes registers the shopping-cart endpoints.
func SetupCartRoutes(r *gin.Engine, svc *service.CartService) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("/add", cartControllers.AddToCart(svc))        // POST /cart/add
		cartGroup.GET("/:email", cartControllers.GetCartByEmail(svc)) // GET /cart/:email
	}
}
