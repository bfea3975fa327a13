package binding

import (
	"github.com/gin-gonic/gin"

	"github.com/ray0128/sunday-for-rayinhair/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	bindings := r.Group("/bindings")
	bindings.Use(middleware.AuthMiddleware())
	{
		bindings.GET("", middleware.RBACAuthorize(rbacService, "binding", "read"), handler.GetAll)
		bindings.POST("", middleware.RBACAuthorize(rbacService, "binding", "write"), handler.Create)
		bindings.DELETE("/:id", middleware.RBACAuthorize(rbacService, "binding", "write"), handler.Deactivate)
	}
}
