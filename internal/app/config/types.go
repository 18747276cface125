package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App App
		JWT JWT
	}
	App struct {
		Env                       string
		Port                      string
		Version                   string
		EndpointPrefix            string
		Timezone                  string
		MaxRequests               int
		ShutdownTimeout           int
		AdminIdentity             string
		RabbitMQChatOutboundQueue string
		OtpTTLInMinute            int
		LoginAlertTTLInMinute     int
		ChatStepTTLInMinute       int
		OutboundMessagesPerSecond float64
		OutboundMessagesBurst     int
		LoginAlertRetentionInHour int
	}
	JWT struct {
		Secret string
	}
)
