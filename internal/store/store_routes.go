package store

import (
	"github.com/gin-gonic/gin"

	"github.com/ray0128/sunday-for-rayinhair/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	stores := r.Group("/store")
	stores.Use(middleware.AuthMiddleware())
	{
		stores.GET("", middleware.RBACAuthorize(rbacService, "store", "read"), handler.Get)
		stores.PUT("", middleware.RBACAuthorize(rbacService, "store", "write"), handler.Update)
	}
}
