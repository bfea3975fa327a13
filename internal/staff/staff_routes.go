package staff

import (
	"github.com/gin-gonic/gin"

	"github.com/ray0128/sunday-for-rayinhair/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	staff := r.Group("/staff")
	staff.Use(middleware.AuthMiddleware())
	{
		staff.GET("", middleware.RBACAuthorize(rbacService, "staff", "read"), handler.GetAll)
		staff.GET("/:id", middleware.RBACAuthorize(rbacService, "staff", "read"), handler.GetById)
		staff.POST("", middleware.RBACAuthorize(rbacService, "staff", "write"), handler.Create)
		staff.PUT("/:id", middleware.RBACAuthorize(rbacService, "staff", "write"), handler.Update)
	}
}
