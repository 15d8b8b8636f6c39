package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"interview-prep-be/internal/dto"
	"interview-prep-be/internal/pkg/logger"
	"interview-prep-be/internal/pkg/mailer"
	"interview-prep-be/internal/repository/specification"
	"interview-prep-be/internal/repository/unitofwork"
	"interview-prep-be/pkg/interview"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService delivers the summary email once a session completes.
// It reads completion messages from the in-process bus so the request path
// never waits on SMTP.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	store        interview.SessionStore
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	store interview.SessionStore,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		store:        store,
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       log,
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
	var payload dto.SessionCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal completion message", map[string]interface{}{"error": err})
		// A malformed message never becomes valid; ack it to stop the retries.
		msg.Ack()
		return
	}

	session, err := cs.store.Get(ctx, payload.SessionId)
	if err != nil {
		if interview.IsKind(err, interview.KindNotFound) {
			cs.logger.Warn("ConsumerService", "Completed session no longer exists", map[string]interface{}{"session_id": payload.SessionId})
			msg.Ack()
			return
		}
		cs.logger.Error("ConsumerService", "Failed to load completed session", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err,
		})
		msg.Nack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to load session owner", map[string]interface{}{
			"user_id": payload.UserId,
			"error":   err,
		})
		msg.Nack()
		return
	}
	if user == nil {
		msg.Ack()
		return
	}

	levelAverages := make([]float64, 0, len(session.Levels))
	for _, level := range session.Levels {
		levelAverages = append(levelAverages, level.AverageScore)
	}

	if err := cs.emailService.SendSessionSummary(user.Email, session.Context.Role, session.TotalScore, levelAverages); err != nil {
		cs.logger.Error("ConsumerService", "Failed to send session summary email", map[string]interface{}{
			"session_id": payload.SessionId,
			"email":      user.Email,
			"error":      err,
		})
		msg.Nack()
		return
	}

	cs.logger.Info("ConsumerService", "Session summary email sent", map[string]interface{}{
		"session_id": payload.SessionId,
		"email":      user.Email,
	})
	msg.Ack()
}
