package override

import (
	"github.com/gin-gonic/gin"

	"github.com/ray0128/sunday-for-rayinhair/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	overrides := r.Group("/overrides")
	overrides.Use(middleware.AuthMiddleware())
	{
		overrides.GET("", middleware.RBACAuthorize(rbacService, "override", "read"), handler.GetByMonth)
		overrides.PUT("", middleware.RBACAuthorize(rbacService, "override", "write"), handler.Upsert)
		overrides.DELETE("/:id", middleware.RBACAuthorize(rbacService, "override", "write"), handler.Delete)
	}
}
