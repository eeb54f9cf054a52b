package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OwnerHeader carries the ID of the authenticated user. Authentication
// itself happens upstream; this backend only consumes the opaque owner
// identifier the auth layer resolved.
const OwnerHeader = "X-Owner-Id"

const ownerContextKey = "owner"

var errOwnerMissing = errors.New("the X-Owner-Id header must be set to the ID of the authenticated user")

// RequireOwner parses the owner ID from the request headers and makes
// it available to all handlers. Requests without a valid owner ID are
// rejected.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(OwnerHeader))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errOwnerMissing.Error()})
			return
		}

		c.Set(ownerContextKey, id)
		c.Next()
	}
}

// owner returns the owner ID that RequireOwner stored on the context.
func owner(c *gin.Context) uuid.UUID {
	return c.MustGet(ownerContextKey).(uuid.UUID)
}
