package api

import "github.com/gin-gonic/gin"

func NewRouter(h *IssueHandler) *gin.Engine {
  engine := gin.New()
  engine.Use(gin.Recovery())

  group := engine.Group("/api", RequireIdentity())
  IssueRouter(group.Group("/issue"), h)

  return engine
}

func IssueRouter(rg *gin.RouterGroup, h *IssueHandler) {
  rg.GET("/:id", h.GetByID)
  rg.GET("/:id/modlogs", h.GetModlogs)
  rg.POST("/findexact", h.FindExact)
  rg.PUT("/:id", h.Update)
  rg.POST("", h.Create)
  rg.DELETE("/:id", h.Delete)
}
