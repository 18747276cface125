package notifier

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"authrelay-service/internal/app/contracts"
	"authrelay-service/internal/pkg/constvars"
	"authrelay-service/internal/pkg/dto/requests"
	"authrelay-service/internal/pkg/exceptions"
)

type notifierService struct {
	Channel *amqp091.Channel
	Queue   string
	Limiter *rate.Limiter
	Log     *zap.Logger
}

var (
	notifierServiceInstance contracts.NotifierService
	onceNotifierService     sync.Once
	notifierServiceError    error
)

func NewNotifierService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string, messagesPerSecond float64, burst int) (contracts.NotifierService, error) {
	onceNotifierService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			notifierServiceError = err
			return
		}
		instance := &notifierService{
			Channel: channel,
			Queue:   queue,
			Limiter: rate.NewLimiter(rate.Limit(messagesPerSecond), burst),
			Log:     logger,
		}
		notifierServiceInstance = instance
	})
	return notifierServiceInstance, notifierServiceError
}

func (s *notifierService) SendMessage(ctx context.Context, message *requests.OutboundMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("notifierService.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOutboundTypeKey, message.Type),
	)

	// Chat platforms rate-limit bot sends, throttle before publishing.
	err := s.Limiter.Wait(ctx)
	if err != nil {
		s.Log.Error("notifierService.SendMessage error waiting for throttle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDispatchThrottle(err)
	}

	body, err := json.Marshal(message)
	if err != nil {
		s.Log.Error("notifierService.SendMessage error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, publishing)
	if err != nil {
		s.Log.Error("notifierService.SendMessage error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("notifierService.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	return nil
}
