package api

import (
  "context"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/ushakovn/ticketry/internal/models"
)

type IssueService interface {
  GetByID(ctx context.Context, id string) (models.Document, error)
  GetModlogs(ctx context.Context, id string) (models.Document, error)
  FindExact(ctx context.Context, criteria models.Document) (models.Document, error)
  Update(ctx context.Context, caller, id string, payload, userInfo models.Document) (models.Document, error)
  Create(ctx context.Context, caller string, payload models.Document) (string, error)
  Delete(ctx context.Context, caller, id string, userInfo models.Document) error
}

type IssueHandler struct {
  service IssueService
}

func NewIssueHandler(service IssueService) *IssueHandler {
  return &IssueHandler{
    service: service,
  }
}

func (h *IssueHandler) GetByID(c *gin.Context) {
  issue, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
  if err != nil {
    respondError(c, err)
    return
  }

  c.JSON(http.StatusOK, issue)
}

func (h *IssueHandler) GetModlogs(c *gin.Context) {
  modlogs, err := h.service.GetModlogs(c.Request.Context(), c.Param("id"))
  if err != nil {
    respondError(c, err)
    return
  }

  c.JSON(http.StatusOK, modlogs)
}

func (h *IssueHandler) FindExact(c *gin.Context) {
  var criteria models.Document

  if err := c.ShouldBindJSON(&criteria); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request payload"})
    return
  }

  issue, err := h.service.FindExact(c.Request.Context(), criteria)
  if err != nil {
    respondError(c, err)
    return
  }

  c.JSON(http.StatusOK, issue)
}

type updateRequest struct {
  Issue    models.Document `json:"issue" binding:"required"`
  UserInfo struct {
    Data models.Document `json:"data"`
  } `json:"userInfo"`
}

func (h *IssueHandler) Update(c *gin.Context) {
  var req updateRequest

  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request payload"})
    return
  }

  issue, err := h.service.Update(c.Request.Context(),
    CallerIdentity(c), c.Param("id"), req.Issue, req.UserInfo.Data)

  if err != nil {
    respondError(c, err)
    return
  }

  c.JSON(http.StatusOK, issue)
}

func (h *IssueHandler) Create(c *gin.Context) {
  var payload models.Document

  if err := c.ShouldBindJSON(&payload); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request payload"})
    return
  }

  id, err := h.service.Create(c.Request.Context(), CallerIdentity(c), payload)
  if err != nil {
    respondError(c, err)
    return
  }

  c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *IssueHandler) Delete(c *gin.Context) {
  var userInfo models.Document

  // Body is optional here: absent user info reduces to empty fields.
  _ = c.ShouldBindJSON(&userInfo)

  err := h.service.Delete(c.Request.Context(),
    CallerIdentity(c), c.Param("id"), userInfo)

  if err != nil {
    respondError(c, err)
    return
  }

  c.Status(http.StatusNoContent)
}
