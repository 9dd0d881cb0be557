package app

import (
	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/report"
	"go-timesheet/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	timesheetRepo := timesheet.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	// --- Services ---
	timesheetService := timesheet.NewServiceWithOutbox(timesheetRepo, outboxRepo)
	reportService := report.NewService(timesheetService)

	// --- Handlers ---
	timesheetHandler := timesheet.NewHandlerWithRedis(timesheetService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/timesheets")
	{
		timesheet.RegisterRoutes(api, timesheetHandler, rdb)
		report.RegisterRoutes(api, reportHandler)
	}

	return nil
}
