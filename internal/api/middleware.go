package api

import (
  "net/http"

  "github.com/gin-gonic/gin"
)

const (
  identityHeader = "X-User-Id"
  identityKey    = "caller_identity"
)

// RequireIdentity trusts the caller identity installed by the fronting
// session layer and rejects requests arriving without one.
func RequireIdentity() gin.HandlerFunc {
  return func(c *gin.Context) {
    identity := c.GetHeader(identityHeader)

    if identity == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
      return
    }

    c.Set(identityKey, identity)
    c.Next()
  }
}

func CallerIdentity(c *gin.Context) string {
  return c.GetString(identityKey)
}
