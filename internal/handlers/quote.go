package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horizonhq/horizon-api/internal/services"
)

// RandomQuote returns a motivational quote for the welcome view. No
// authentication required.
func RandomQuote(c *gin.Context) {
	c.JSON(http.StatusOK, services.RandomQuote())
}
