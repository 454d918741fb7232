// File: paintbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"paintbook/config"
	"paintbook/cron"
	"paintbook/database"
	bookingRepoPkg "paintbook/database/repository/booking"
	slotRepoPkg "paintbook/database/repository/slot"
	userRepoPkg "paintbook/database/repository/user"
	"paintbook/handlers"
	"paintbook/middleware"
	"paintbook/routes"
	"paintbook/services/availability"
	"paintbook/services/booking"
	"paintbook/services/notification"
	"paintbook/services/tasks"
	"paintbook/services/user"
	"paintbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		UserRepo: userRepo,
	}

	reminderScheduler := tasks.NewReminderScheduler()

	assignmentEngine := &booking.DefaultAssignmentEngine{
		Scorer:         booking.DefaultProviderScorer{},
		UserRepo:       userRepo,
		BookingRepo:    bookingRepo,
		Responsiveness: booking.NewRedisResponsivenessProvider(utils.GetMetricsCacheClient()),
		Now:            time.Now,
	}

	alternativeFinder := &booking.DefaultAlternativeFinder{
		SlotRepo:    slotRepo,
		WindowHours: config.AppConfig.AlternativeWindowHours,
	}

	bookingService := &booking.DefaultBookingService{
		SlotRepo:        slotRepo,
		BookingRepo:     bookingRepo,
		UserRepo:        userRepo,
		Engine:          assignmentEngine,
		Alternatives:    alternativeFinder,
		NotificationSvc: notificationService,
		Reminders:       reminderScheduler,
		Now:             time.Now,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		SlotRepo: slotRepo,
		UserRepo: userRepo,
		Now:      time.Now,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		User:         handlers.NewUserHandler(userService, logger),
		Availability: handlers.NewAvailabilityHandler(availabilityService, logger),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
