package app

import (
	"database/sql"
	"net/http"

	"github.com/ProfileJass/Incapacities/internal/company"
	"github.com/ProfileJass/Incapacities/internal/incapacity"
	"github.com/ProfileJass/Incapacities/internal/messaging/kafka"
	"github.com/ProfileJass/Incapacities/internal/middleware"
	"github.com/ProfileJass/Incapacities/internal/payroll"
	"github.com/ProfileJass/Incapacities/internal/shared/counter"
	"github.com/ProfileJass/Incapacities/internal/user"
	"github.com/ProfileJass/Incapacities/internal/userpayroll"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	incapacityRepo := incapacity.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	registryService := userpayroll.NewService(userRepo, companyRepo, payrollRepo)
	incapacityService := incapacity.NewServiceWithOutbox(db, incapacityRepo, registryService, counterRepo, outboxRepo, rdb)

	// --- Handlers ---
	incapacityHandler := incapacity.NewHandler(incapacityService)

	// --- Routes Registration ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Service is running",
		})
	})

	api := router.Group("/api")
	{
		incapacity.RegisterRoutes(api, incapacityHandler, rdb)
	}

	return nil
}
