package storeconfig

import (
	"github.com/gin-gonic/gin"

	"github.com/ray0128/sunday-for-rayinhair/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	cfg := r.Group("/config")
	cfg.Use(middleware.AuthMiddleware())
	{
		cfg.GET("", middleware.RBACAuthorize(rbacService, "config", "read"), handler.List)
		cfg.GET("/snapshot", middleware.RBACAuthorize(rbacService, "config", "read"), handler.GetSnapshot)
		cfg.PUT("", middleware.RBACAuthorize(rbacService, "config", "write"), handler.Upsert)
	}
}
