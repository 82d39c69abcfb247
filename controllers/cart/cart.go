package cartControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/potteryshop/shop-api/models"
	"github.com/potteryshop/shop-api/service"
)

type AddToCartInput struct {
	Email   string          `json:"email" binding:"required"`
	Product models.CartItem `json:"product" binding:"required"`
}

// POST /cart/add
func AddToCart(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := svc.AddProduct(input.Email, input.Product)
		if err != nil {
			log.Printf("add to cart failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart!", "cart": cart})
	}
}

// GET /cart/:email
func GetCartByEmail(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		products, err := svc.GetCart(email)
		if err != nil {
			log.Printf("get cart failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		if len(products) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Cart is empty", "products": []models.CartItem{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
