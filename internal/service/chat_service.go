package service

import (
	"context"
	"strings"
	"time"

	"wellness-be/internal/constant"
	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/pkg/logger"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"
	"wellness-be/pkg/chat"
	"wellness-be/pkg/llm"
	"wellness-be/pkg/wellness"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TitleGenerator names a conversation from its first exchange. Failures are
// tolerated; the conversation keeps its default title.
type TitleGenerator interface {
	GenerateTitle(ctx context.Context, firstUserMessage, firstAssistantMessage string) (string, error)
}

type IChatService interface {
	CreateConversation(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, error)
	GetConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error)
	GetConversation(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ConversationDetailResponse, error)
	DeleteConversation(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Personas(ctx context.Context, userId uuid.UUID) ([]dto.PersonaResponse, error)
}

type chatService struct {
	uowFactory        unitofwork.RepositoryFactory
	llmProvider       llm.LLMProvider
	titler            TitleGenerator
	assessmentService IAssessmentService
	logger            logger.ILogger
	messageLimit      int
	completionTimeout time.Duration
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	titler TitleGenerator,
	assessmentService IAssessmentService,
	log logger.ILogger,
	messageLimit int,
	completionTimeout time.Duration,
) IChatService {
	return &chatService{
		uowFactory:        uowFactory,
		llmProvider:       llmProvider,
		titler:            titler,
		assessmentService: assessmentService,
		logger:            log,
		messageLimit:      messageLimit,
		completionTimeout: completionTimeout,
	}
}

func (s *chatService) CreateConversation(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.Persona != nil {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err != nil {
			return nil, err
		}
		gender := ""
		if user != nil {
			gender = user.Gender
		}
		if !chat.ValidPersona(*req.Persona, gender) {
			return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid persona")
		}
	}

	conversation := entity.Conversation{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     constant.DefaultConversationTitle,
		Persona:   req.Persona,
		CreatedAt: time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, &conversation); err != nil {
		return nil, err
	}

	return &dto.CreateConversationResponse{
		Id:      conversation.Id,
		Title:   conversation.Title,
		Persona: conversation.Persona,
	}, nil
}

func (s *chatService) GetConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ConversationResponse, len(conversations))
	for i, c := range conversations {
		result[i] = &dto.ConversationResponse{
			Id:        c.Id,
			Title:     c.Title,
			Persona:   c.Persona,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}
	return result, nil
}

func (s *chatService) GetConversation(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ConversationDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Conversation not found")
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ConversationDetailResponse{
		Id:        conversation.Id,
		Title:     conversation.Title,
		Persona:   conversation.Persona,
		Messages:  make([]dto.MessageResponse, len(messages)),
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.UpdatedAt,
	}
	for i, m := range messages {
		res.Messages[i] = dto.MessageResponse{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return res, nil
}

func (s *chatService) DeleteConversation(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if conversation == nil {
		return serverutils.NewAppError(fiber.StatusNotFound, "Conversation not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.MessageRepository().DeleteAllByConversationId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.ConversationRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}

func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Message content must not be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: req.ConversationId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Conversation not found")
	}

	limit, err := s.limitFor(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	// Both the user turn and the reply count against the limit. Reject before
	// doing any work so a capped conversation never reaches the model.
	count, err := uow.MessageRepository().Count(ctx, specification.ByConversationID{ConversationID: conversation.Id})
	if err != nil {
		return nil, err
	}
	if count+2 > int64(limit) {
		return nil, s.rateLimitError(count, limit)
	}

	if chat.IsCrisis(content) {
		return s.persistExchange(ctx, conversation, content, chat.CrisisResponse, count, limit, true)
	}

	history, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	reply, err := s.complete(ctx, conversation, history, content)
	if err != nil {
		s.logger.Error("ChatService", "Completion failed", map[string]interface{}{
			"conversation_id": conversation.Id,
			"error":           err.Error(),
		})
		return nil, serverutils.NewAppError(fiber.StatusBadGateway, "Assistant is unavailable, please try again")
	}

	return s.persistExchange(ctx, conversation, content, reply, count, limit, false)
}

// limitFor resolves the conversation message cap. A positive per-user
// override wins over the platform default.
func (s *chatService) limitFor(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (int, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return 0, err
	}
	if user != nil && user.MessageLimit != nil && *user.MessageLimit > 0 {
		return *user.MessageLimit, nil
	}
	return s.messageLimit, nil
}

func (s *chatService) complete(ctx context.Context, conversation *entity.Conversation, history []*entity.Message, content string) (string, error) {
	var persona *chat.Persona
	if conversation.Persona != nil {
		if p, ok := chat.PersonaByID(*conversation.Persona); ok {
			persona = &p
		}
	}

	profileContext := ""
	if persona == nil {
		profile, err := s.assessmentService.ProfileFor(ctx, conversation.UserId)
		if err != nil {
			return "", err
		}
		if profile != nil {
			profileContext = wellness.ChatContext(profile)
		}
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: constant.ChatRoleSystem, Content: chat.SystemPrompt(persona, profileContext)})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: constant.ChatRoleUser, Content: content})

	completionCtx, cancel := context.WithTimeout(ctx, s.completionTimeout)
	defer cancel()

	return s.llmProvider.Chat(completionCtx, messages)
}

// persistExchange writes the user turn and the reply in one transaction and
// bumps the conversation's updatedAt. On the first exchange it also attempts
// title generation.
func (s *chatService) persistExchange(ctx context.Context, conversation *entity.Conversation, userContent, replyContent string, priorCount int64, limit int, crisis bool) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	// Re-count inside the transaction so concurrent sends cannot push the
	// conversation past its cap between check and write.
	count, err := uow.MessageRepository().Count(ctx, specification.ByConversationID{ConversationID: conversation.Id})
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if count+2 > int64(limit) {
		uow.Rollback()
		return nil, s.rateLimitError(count, limit)
	}

	now := time.Now()
	userMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.ChatRoleUser,
		Content:        userContent,
		CreatedAt:      now,
	}
	assistantMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.ChatRoleAssistant,
		Content:        replyContent,
		CreatedAt:      now.Add(time.Millisecond),
	}

	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.MessageRepository().Create(ctx, &assistantMessage); err != nil {
		uow.Rollback()
		return nil, err
	}

	conversation.UpdatedAt = &now
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if priorCount == 0 {
		s.maybeGenerateTitle(ctx, conversation, userContent, replyContent)
	}

	return &dto.SendMessageResponse{
		ConversationId: conversation.Id,
		Title:          conversation.Title,
		Sent: &dto.MessageResponse{
			Id:        userMessage.Id,
			Role:      userMessage.Role,
			Content:   userMessage.Content,
			CreatedAt: userMessage.CreatedAt,
		},
		Reply: &dto.MessageResponse{
			Id:        assistantMessage.Id,
			Role:      assistantMessage.Role,
			Content:   assistantMessage.Content,
			CreatedAt: assistantMessage.CreatedAt,
		},
		CrisisRedirect: crisis,
	}, nil
}

func (s *chatService) maybeGenerateTitle(ctx context.Context, conversation *entity.Conversation, userContent, replyContent string) {
	if s.titler == nil {
		return
	}

	title, err := s.titler.GenerateTitle(ctx, userContent, replyContent)
	if err != nil {
		s.logger.Warn("ChatService", "Title generation failed", map[string]interface{}{
			"conversation_id": conversation.Id,
			"error":           err.Error(),
		})
		return
	}
	if title == "" {
		return
	}

	conversation.Title = title
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		s.logger.Warn("ChatService", "Failed to save generated title", map[string]interface{}{
			"conversation_id": conversation.Id,
			"error":           err.Error(),
		})
	}
}

func (s *chatService) rateLimitError(used int64, limit int) error {
	return serverutils.NewAppErrorWithData(fiber.StatusTooManyRequests, "Message limit reached for this conversation", dto.RateLimitData{
		RateLimitReached: true,
		Limit:            limit,
		Used:             used,
	})
}

func (s *chatService) Personas(ctx context.Context, userId uuid.UUID) ([]dto.PersonaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	gender := ""
	if user != nil {
		gender = user.Gender
	}

	personas := chat.PersonasForGender(gender)
	result := make([]dto.PersonaResponse, len(personas))
	for i, p := range personas {
		result[i] = dto.PersonaResponse{
			ID:          p.ID,
			Name:        p.Name,
			Role:        p.Role,
			Description: p.Description,
			AvatarURL:   p.AvatarURL,
		}
	}
	return result, nil
}
