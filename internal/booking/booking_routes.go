package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/ray0128/sunday-for-rayinhair/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.GET("", middleware.RBACAuthorize(rbacService, "booking", "read"), handler.GetByMonth)
		bookings.POST("", middleware.RBACAuthorize(rbacService, "booking", "write"), handler.Create)
		bookings.DELETE("/:id", middleware.RBACAuthorize(rbacService, "booking", "write"), handler.Delete)
	}
}
