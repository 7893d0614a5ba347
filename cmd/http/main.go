package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"timegrid-service/internal/app/config"
	"timegrid-service/internal/app/delivery/http/controllers"
	"timegrid-service/internal/app/delivery/http/middlewares"
	"timegrid-service/internal/app/delivery/http/routers"
	"timegrid-service/internal/app/drivers/database"
	"timegrid-service/internal/app/drivers/logger"
	"timegrid-service/internal/app/services/core/auth"
	"timegrid-service/internal/app/services/core/session"
	"timegrid-service/internal/app/services/core/timeblocks"
	"timegrid-service/internal/app/services/core/todos"
	"timegrid-service/internal/app/services/core/users"
	sharedRedis "timegrid-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, log *logrus.Logger) {
	ctx := context.Background()

	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	if err := userMongoRepository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Todo
	todoMongoRepository := todos.NewTodoMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	todoUsecase := todos.NewTodoUsecase(todoMongoRepository, sessionService, bootstrap.Logger)
	todoController := controllers.NewTodoController(bootstrap.Logger, todoUsecase)

	// TimeBlock
	timeBlockMongoRepository := timeblocks.NewTimeBlockMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	if err := timeBlockMongoRepository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create time block indexes: %v", err)
	}
	timeBlockUsecase := timeblocks.NewTimeBlockUsecase(timeBlockMongoRepository, sessionService, bootstrap.Logger)
	timeBlockController := controllers.NewTimeBlockController(bootstrap.Logger, timeBlockUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		todoController,
		timeBlockController,
	)
}
