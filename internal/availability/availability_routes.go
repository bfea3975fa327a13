package availability

import (
	"github.com/gin-gonic/gin"

	"github.com/ray0128/sunday-for-rayinhair/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	availability := r.Group("/availability")
	availability.Use(middleware.AuthMiddleware())
	{
		availability.GET("", middleware.RBACAuthorize(rbacService, "availability", "read"), handler.GetMonth)
	}
}
