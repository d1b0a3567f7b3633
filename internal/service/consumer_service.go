package service

import (
	"context"
	"encoding/json"

	"site-chatbot-be/internal/dto"
	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/pkg/logger"
	"site-chatbot-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains TurnLogged events off the in-process bus and
// persists them, keeping analytics writes off the chat request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.TurnLoggedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("ConsumerService", "Failed to unmarshal turn event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads would retry forever
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	chatLog := &entity.ChatLog{
		Id:              payload.Id,
		UserId:          payload.UserId,
		Query:           payload.Query,
		TranslatedQuery: payload.TranslatedQuery,
		Answer:          payload.Answer,
		Source:          payload.Source,
		Language:        payload.Language,
		ConversionScore: payload.ConversionScore,
		CreatedAt:       payload.CreatedAt,
	}
	if err := uow.ChatLogRepository().Create(ctx, chatLog); err != nil {
		cs.log.Error("ConsumerService", "Failed to persist chat log", map[string]interface{}{
			"log_id": payload.Id.String(),
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
