package app

import (
	"log"
	"os"

	"github.com/ProfileJass/Incapacities/internal/company"
	"github.com/ProfileJass/Incapacities/internal/incapacity"
	"github.com/ProfileJass/Incapacities/internal/messaging/kafka"
	"github.com/ProfileJass/Incapacities/internal/payroll"
	"github.com/ProfileJass/Incapacities/internal/shared/connection"
	"github.com/ProfileJass/Incapacities/internal/shared/counter"
	"github.com/ProfileJass/Incapacities/internal/user"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	log.Println("✅ Database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := connection.Migrate(gormDB,
		&user.User{},
		&company.Company{},
		&payroll.Record{},
		&incapacity.Incapacity{},
		&counter.FilingCounter{},
		&kafka.OutboxEvent{},
	); err != nil {
		return err
	}
	log.Println("✅ Database schema migrated")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	// Register Modules & Routes
	return registerModules(router, sqlDB, gormDB, redisClient)
}
