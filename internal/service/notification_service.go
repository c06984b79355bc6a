package service

import (
	"context"
	"time"

	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/pkg/logger"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"
	"wellness-be/pkg/events"
	pktNats "wellness-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery pushes real-time updates, implemented by the
// websocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification dto.NotificationResponse)
}

type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber *pktNats.Subscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the engagement event bus with a durable consumer.
func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "No subscriber configured, notifications disabled", nil)
		return
	}

	err := s.subscriber.Subscribe("wellness.>", "notification-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to wellness.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	var notifType entity.NotificationType
	var title, body string

	switch event.EventType() {
	case events.TypePostLiked:
		notifType = entity.NotificationTypePostLiked
		title = "New like"
		body = "Someone liked your post"
	case events.TypePostCommented:
		notifType = entity.NotificationTypePostCommented
		title = "New comment"
		body = "Someone commented on your post"
	default:
		// Not a notification-bearing event.
		return nil
	}

	userIdStr, _ := event.Payload()["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Event without valid user_id", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	notification := entity.Notification{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      notifType,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, &notification); err != nil {
		s.logger.Error("NotificationService", "Failed to save notification", map[string]interface{}{"error": err.Error()})
		return err
	}

	if s.delivery != nil {
		s.delivery.Send(userId, notificationResponse(&notification))
	}
	return nil
}

func (s *NotificationService) GetNotifications(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.NotificationListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	unread, err := uow.NotificationRepository().Count(ctx,
		specification.ByUserID{UserID: userId},
		specification.Filter("read", false),
	)
	if err != nil {
		return nil, err
	}

	res := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, len(notifications)),
		UnreadCount:   unread,
	}
	for i, n := range notifications {
		res.Notifications[i] = notificationResponse(n)
	}
	return res, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id, userId)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllRead(ctx, userId)
}

func notificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		Id:        n.Id,
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
