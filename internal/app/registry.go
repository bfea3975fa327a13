package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ray0128/sunday-for-rayinhair/internal/availability"
	"github.com/ray0128/sunday-for-rayinhair/internal/binding"
	"github.com/ray0128/sunday-for-rayinhair/internal/booking"
	"github.com/ray0128/sunday-for-rayinhair/internal/leave"
	"github.com/ray0128/sunday-for-rayinhair/internal/messaging/kafka"
	"github.com/ray0128/sunday-for-rayinhair/internal/override"
	"github.com/ray0128/sunday-for-rayinhair/internal/rbac"
	"github.com/ray0128/sunday-for-rayinhair/internal/rbac/infra"
	"github.com/ray0128/sunday-for-rayinhair/internal/staff"
	"github.com/ray0128/sunday-for-rayinhair/internal/store"
	"github.com/ray0128/sunday-for-rayinhair/internal/storeconfig"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	storeRepo := store.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	configRepo := storeconfig.NewRepository(gormDB)
	bindingRepo := binding.NewRepository(gormDB)
	overrideRepo := override.NewRepository(gormDB)
	bookingRepo := booking.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	availabilityRepo := availability.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	storeService := store.NewService(storeRepo)
	staffService := staff.NewService(staffRepo)
	configService := storeconfig.NewService(configRepo)
	bindingService := binding.NewService(bindingRepo)
	overrideService := override.NewService(overrideRepo)
	bookingService := booking.NewService(bookingRepo)
	leaveService := leave.NewService(db, leaveRepo, configService, outboxRepo)
	availabilityService := availability.NewService(availabilityRepo, configService, rdb)

	// --- Handlers ---
	storeHandler := store.NewHandler(storeService)
	staffHandler := staff.NewHandler(staffService)
	configHandler := storeconfig.NewHandler(configService)
	bindingHandler := binding.NewHandler(bindingService)
	overrideHandler := override.NewHandler(overrideService)
	bookingHandler := booking.NewHandler(bookingService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	availabilityHandler := availability.NewHandler(availabilityService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		store.RegisterRoutes(api, storeHandler, rbacService)
		staff.RegisterRoutes(api, staffHandler, rbacService)
		storeconfig.RegisterRoutes(api, configHandler, rbacService)
		binding.RegisterRoutes(api, bindingHandler, rbacService)
		override.RegisterRoutes(api, overrideHandler, rbacService)
		booking.RegisterRoutes(api, bookingHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		availability.RegisterRoutes(api, availabilityHandler, rbacService)
	}

	return nil
}
