package api

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/ticketry/internal/issues"
)

// respondError maps service errors to status codes. Storage and unknown
// faults are logged with full context server-side and surfaced with a
// generic message only.
func respondError(c *gin.Context, err error) {
  switch {
  case errors.Is(err, issues.ErrNotFound):
    c.JSON(http.StatusNotFound, gin.H{"error": "issue not found"})

  case errors.Is(err, issues.ErrPermissionDenied):
    c.JSON(http.StatusForbidden, gin.H{"error": "user does not have permissions to perform this operation"})

  case errors.Is(err, issues.ErrMalformedInput):
    c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request payload"})

  case errors.Is(err, issues.ErrStorageWrite):
    log.
      WithField("request.path", c.FullPath()).
      Errorf("storage write failed: %v", err)

    c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unable to write issue to database"})

  default:
    log.
      WithField("request.path", c.FullPath()).
      Errorf("request handling failed: %v", err)

    c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
  }
}
