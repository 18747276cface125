package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"authrelay-service/internal/app/config"
	"authrelay-service/internal/app/delivery/http/controllers"
	"authrelay-service/internal/app/delivery/http/middlewares"
	"authrelay-service/internal/app/delivery/http/routers"
	"authrelay-service/internal/app/drivers/database"
	"authrelay-service/internal/app/drivers/logger"
	"authrelay-service/internal/app/drivers/messaging"
	"authrelay-service/internal/app/services/core/chat"
	"authrelay-service/internal/app/services/core/loginalert"
	"authrelay-service/internal/app/services/core/otp"
	"authrelay-service/internal/app/services/core/users"
	"authrelay-service/internal/app/services/shared/notifier"
	redisShared "authrelay-service/internal/app/services/shared/redis"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logrus.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown()
	if err != nil {
		logrus.Fatalf("Failed to close app resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Shared
	redisRepository := redisShared.NewRedisRepository(bootstrap.Redis)
	notifierService, err := notifier.NewNotifierService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQChatOutboundQueue,
		bootstrap.InternalConfig.App.OutboundMessagesPerSecond,
		bootstrap.InternalConfig.App.OutboundMessagesBurst,
	)
	if err != nil {
		return err
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// User links
	userLinkRepository := users.NewUserLinkMongoRepository(bootstrap.MongoDB)

	// OTP
	otpRepository := otp.NewOtpRedisRepository(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.OtpTTLInMinute)*time.Minute,
	)
	otpUsecase := otp.NewOtpUsecase(otpRepository, notifierService, bootstrap.InternalConfig, bootstrap.Logger)

	// Login alerts
	loginSessionRepository := loginalert.NewLoginSessionRedisRepository(
		bootstrap.Redis,
		time.Duration(bootstrap.InternalConfig.App.LoginAlertTTLInMinute)*time.Minute,
		time.Duration(bootstrap.InternalConfig.App.LoginAlertRetentionInHour)*time.Hour,
	)
	loginAlertUsecase := loginalert.NewLoginAlertUsecase(loginSessionRepository, notifierService, bootstrap.InternalConfig, bootstrap.Logger)

	// Chat
	chatStepRepository := chat.NewChatStepRedisRepository(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.ChatStepTTLInMinute)*time.Minute,
	)
	chatUsecase := chat.NewChatUsecase(
		userLinkRepository,
		chatStepRepository,
		otpUsecase,
		loginAlertUsecase,
		notifierService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Controllers
	actionController := controllers.NewActionController(bootstrap.Logger, otpUsecase, loginAlertUsecase, bootstrap.InternalConfig)
	chatController := controllers.NewChatController(bootstrap.Logger, chatUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, actionController, chatController)
	return nil
}
