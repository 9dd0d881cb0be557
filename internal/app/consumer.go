package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-timesheet/internal/events"
	"go-timesheet/internal/messaging/kafka/consumer"
	"go-timesheet/internal/shared/connection"
	"go-timesheet/internal/timesheet"

	"go.uber.org/zap"
)

// RunConsumer keeps the redis lookup cache in step with timesheet events.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := connection.NewKafkaReader(kafkaBroker, events.TimesheetTopic, "timesheet-lookup-cache")
	defer reader.Close()

	lookups := timesheet.NewLookupCache(redisClient, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeTimesheetEvents(ctx, reader, lookups, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
