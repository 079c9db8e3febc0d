package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/horizonhq/horizon-api/internal/errors"
	"github.com/horizonhq/horizon-api/internal/services"
)

// ContextKeyDream is the gin context key holding the resolved dream.
const ContextKeyDream = "dream"

// RequireDreamAccess resolves the :id route parameter to a dream owned
// by the current user and stores it in the context. Dreams that don't
// exist and dreams owned by someone else both yield 404, so the
// existence of another user's dream never leaks.
func RequireDreamAccess(dreams *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		dreamID := c.Param("id")
		if dreamID == "" {
			apierrors.BadRequest(c, "Invalid dream ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		dream, err := dreams.Find(c.Request.Context(), userID, dreamID)
		if err != nil {
			if errors.Is(err, services.ErrDreamNotFound) {
				apierrors.NotFound(c, "Dream not found")
			} else {
				apierrors.InternalError(c, "Failed to load dream")
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyDream, *dream)
		c.Next()
	}
}
