package config

import (
	"authrelay-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "authrelay"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			AdminIdentity:             utils.GetEnvString("APP_ADMIN_IDENTITY", ""),
			RabbitMQChatOutboundQueue: utils.GetEnvString("APP_RABBITMQ_CHAT_OUTBOUND_QUEUE", "chat-outbound"),
			OtpTTLInMinute:            utils.GetEnvInt("APP_OTP_TTL_IN_MINUTE", 10),
			LoginAlertTTLInMinute:     utils.GetEnvInt("APP_LOGIN_ALERT_TTL_IN_MINUTE", 15),
			ChatStepTTLInMinute:       utils.GetEnvInt("APP_CHAT_STEP_TTL_IN_MINUTE", 10),
			OutboundMessagesPerSecond: utils.GetEnvFloat("APP_OUTBOUND_MESSAGES_PER_SECOND", 25),
			OutboundMessagesBurst:     utils.GetEnvInt("APP_OUTBOUND_MESSAGES_BURST", 5),
			LoginAlertRetentionInHour: utils.GetEnvInt("APP_LOGIN_ALERT_RETENTION_IN_HOUR", 1),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
	}
}
