package middleware

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/application/service"
)

// CartCounterMiddleware resolves the authenticated user's cart size and
// exposes it on the response. It never blocks the request: anonymous users
// and lookup failures both report a count of zero.
func CartCounterMiddleware(cartService *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64

		if userIDVal, exists := c.Get("user_id"); exists {
			if userID, ok := userIDVal.(uuid.UUID); ok && userID != uuid.Nil {
				n, err := cartService.CountItems(c.Request.Context(), userID)
				if err != nil {
					log.Printf("Warning: cart count lookup failed for user %s: %v", userID, err)
				} else {
					count = n
				}
			}
		}

		c.Set("cart_count", count)
		c.Header("X-Cart-Count", strconv.FormatInt(count, 10))

		c.Next()
	}
}
