package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/pkg/logger"
	"wellness-be/internal/pkg/mailer"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// consumerService reacts to assessment submissions: it mails a welcome plan
// summary on the first submission and drops a welcome notification row.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub                *gochannel.GoChannel
	topicName             string
	uowFactory            unitofwork.RepositoryFactory
	recommendationService IRecommendationService
	emailService          mailer.IEmailService
	logger                logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	recommendationService IRecommendationService,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:                pubSub,
		topicName:             topicName,
		uowFactory:            uowFactory,
		recommendationService: recommendationService,
		emailService:          emailService,
		logger:                log,
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
	var payload dto.AssessmentSubmittedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed, retrying won't help
		return
	}

	if !payload.FirstSubmission {
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to load user", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	if user == nil {
		msg.Ack()
		return
	}

	summary := cs.planSummary(ctx, payload.UserId)
	if user.Email != "" {
		if err := cs.emailService.SendWelcomeSummary(user.Email, user.FullName, summary); err != nil {
			cs.logger.Warn("ConsumerService", "Welcome email failed", map[string]interface{}{
				"user_id": payload.UserId,
				"error":   err.Error(),
			})
		}
	}

	notification := entity.Notification{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		Type:      entity.NotificationTypeWelcome,
		Title:     "Your plan is ready",
		Body:      "Your personalized wellness plan is waiting for you.",
		CreatedAt: time.Now(),
	}
	if err := uow.NotificationRepository().Create(ctx, &notification); err != nil {
		cs.logger.Error("ConsumerService", "Failed to save welcome notification", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	msg.Ack()
}

func (cs *consumerService) planSummary(ctx context.Context, userId uuid.UUID) string {
	plan, err := cs.recommendationService.Plan(ctx, userId)
	if err != nil || plan == nil || len(plan.Days) == 0 {
		return "Your personalized plan is ready in the app."
	}

	titles := make([]string, 0, 3)
	for i, d := range plan.Days {
		if i == 3 {
			break
		}
		titles = append(titles, fmt.Sprintf("Day %d: %s (%s)", d.DayNumber, d.Title, d.DurationLabel))
	}
	return strings.Join(titles, " · ")
}
