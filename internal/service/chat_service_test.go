package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wellness-be/internal/constant"
	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/repository/contract"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"
	"wellness-be/pkg/chat"
	"wellness-be/pkg/llm"
	"wellness-be/pkg/wellness"

	"github.com/google/uuid"
)

type fakeConversationRepo struct {
	conversation *entity.Conversation
	created      []*entity.Conversation
	updated      []*entity.Conversation
}

func (r *fakeConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeConversationRepo) Update(ctx context.Context, c *entity.Conversation) error {
	r.updated = append(r.updated, c)
	return nil
}

func (r *fakeConversationRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	return r.conversation, nil
}

func (r *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	if r.conversation == nil {
		return nil, nil
	}
	return []*entity.Conversation{r.conversation}, nil
}

func (r *fakeConversationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeMessageRepo struct {
	existing int64
	history  []*entity.Message
	created  []*entity.Message
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.created = append(r.created, m)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	return r.history, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.existing + int64(len(r.created)), nil
}

func (r *fakeMessageRepo) DeleteAllByConversationId(ctx context.Context, conversationId uuid.UUID) error {
	return nil
}

type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return r.user, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeUow struct {
	conversations *fakeConversationRepo
	messages      *fakeMessageRepo
	users         *fakeUserRepo
	otps          *fakeOtpRepo
	checkIns      *fakeCheckInRepo
	posts         *fakePostRepo
	postLikes     *fakePostLikeRepo
	begun         int
	committed     int
	rolledBack    int
}

func (u *fakeUow) Begin(ctx context.Context) error { u.begun++; return nil }
func (u *fakeUow) Commit() error                   { u.committed++; return nil }
func (u *fakeUow) Rollback() error                 { u.rolledBack++; return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                 { return u.users }
func (u *fakeUow) OtpRepository() contract.OtpRepository                   { return u.otps }
func (u *fakeUow) AssessmentRepository() contract.AssessmentRepository     { return nil }
func (u *fakeUow) ConversationRepository() contract.ConversationRepository { return u.conversations }
func (u *fakeUow) MessageRepository() contract.MessageRepository           { return u.messages }
func (u *fakeUow) ExerciseRepository() contract.ExerciseRepository         { return nil }
func (u *fakeUow) VideoRepository() contract.VideoRepository               { return nil }
func (u *fakeUow) CommunityRepository() contract.CommunityRepository       { return nil }
func (u *fakeUow) PostRepository() contract.PostRepository                 { return u.posts }
func (u *fakeUow) CommentRepository() contract.CommentRepository           { return nil }
func (u *fakeUow) PostLikeRepository() contract.PostLikeRepository         { return u.postLikes }
func (u *fakeUow) ProgressRepository() contract.ProgressRepository         { return nil }
func (u *fakeUow) CheckInRepository() contract.CheckInRepository           { return u.checkIns }
func (u *fakeUow) NotificationRepository() contract.NotificationRepository { return nil }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.calls++
	return f.reply, f.err
}

type fakeAssessments struct {
	profile *wellness.Profile
}

func (f *fakeAssessments) Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error) {
	return nil, nil
}
func (f *fakeAssessments) Show(ctx context.Context, userId uuid.UUID) (*dto.ShowAssessmentResponse, error) {
	return nil, nil
}
func (f *fakeAssessments) WellnessProfile(ctx context.Context, userId uuid.UUID) (*dto.WellnessProfileResponse, error) {
	return nil, nil
}
func (f *fakeAssessments) ProfileFor(ctx context.Context, userId uuid.UUID) (*wellness.Profile, error) {
	return f.profile, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestChatService(uow *fakeUow, provider *fakeLLM, limit int) IChatService {
	return NewChatService(
		&fakeFactory{uow: uow},
		provider,
		nil,
		&fakeAssessments{},
		nopLogger{},
		limit,
		time.Second,
	)
}

func testConversation(userId uuid.UUID) *entity.Conversation {
	return &entity.Conversation{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     constant.DefaultConversationTitle,
		CreatedAt: time.Now(),
	}
}

func appStatus(t *testing.T, err error) *serverutils.AppError {
	t.Helper()
	var appErr *serverutils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr
}

func TestSendMessageRateLimitBoundary(t *testing.T) {
	userId := uuid.New()

	t.Run("two slots left passes", func(t *testing.T) {
		uow := &fakeUow{
			conversations: &fakeConversationRepo{conversation: testConversation(userId)},
			messages:      &fakeMessageRepo{existing: 98},
			users:         &fakeUserRepo{},
		}
		provider := &fakeLLM{reply: "hello there"}
		svc := newTestChatService(uow, provider, 100)

		res, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
			ConversationId: uow.conversations.conversation.Id,
			Content:        "hi",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.calls != 1 {
			t.Fatalf("expected 1 completion call, got %d", provider.calls)
		}
		if len(uow.messages.created) != 2 {
			t.Fatalf("expected 2 persisted messages, got %d", len(uow.messages.created))
		}
		if res.Reply.Content != "hello there" {
			t.Errorf("reply = %q", res.Reply.Content)
		}
	})

	t.Run("one slot left rejects without writes", func(t *testing.T) {
		uow := &fakeUow{
			conversations: &fakeConversationRepo{conversation: testConversation(userId)},
			messages:      &fakeMessageRepo{existing: 99},
			users:         &fakeUserRepo{},
		}
		provider := &fakeLLM{reply: "hello there"}
		svc := newTestChatService(uow, provider, 100)

		_, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
			ConversationId: uow.conversations.conversation.Id,
			Content:        "hi",
		})
		appErr := appStatus(t, err)
		if appErr.Status != 429 {
			t.Fatalf("status = %d, want 429", appErr.Status)
		}
		data, ok := appErr.Data.(dto.RateLimitData)
		if !ok {
			t.Fatalf("expected RateLimitData payload, got %T", appErr.Data)
		}
		if !data.RateLimitReached {
			t.Error("rate_limit_reached flag not set")
		}
		if provider.calls != 0 {
			t.Errorf("completion called %d times, want 0", provider.calls)
		}
		if len(uow.messages.created) != 0 {
			t.Errorf("%d messages persisted, want 0", len(uow.messages.created))
		}
	})
}

func TestSendMessagePerUserLimitOverride(t *testing.T) {
	userId := uuid.New()
	override := 4

	t.Run("override caps below the platform default", func(t *testing.T) {
		uow := &fakeUow{
			conversations: &fakeConversationRepo{conversation: testConversation(userId)},
			messages:      &fakeMessageRepo{existing: 3},
			users:         &fakeUserRepo{user: &entity.User{Id: userId, MessageLimit: &override}},
		}
		provider := &fakeLLM{reply: "hello there"}
		svc := newTestChatService(uow, provider, 100)

		_, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
			ConversationId: uow.conversations.conversation.Id,
			Content:        "hi",
		})
		appErr := appStatus(t, err)
		if appErr.Status != 429 {
			t.Fatalf("status = %d, want 429", appErr.Status)
		}
		data, ok := appErr.Data.(dto.RateLimitData)
		if !ok {
			t.Fatalf("expected RateLimitData payload, got %T", appErr.Data)
		}
		if data.Limit != override {
			t.Errorf("reported limit = %d, want %d", data.Limit, override)
		}
		if provider.calls != 0 {
			t.Errorf("completion called %d times, want 0", provider.calls)
		}
	})

	t.Run("override with room left passes", func(t *testing.T) {
		uow := &fakeUow{
			conversations: &fakeConversationRepo{conversation: testConversation(userId)},
			messages:      &fakeMessageRepo{existing: 2},
			users:         &fakeUserRepo{user: &entity.User{Id: userId, MessageLimit: &override}},
		}
		provider := &fakeLLM{reply: "hello there"}
		svc := newTestChatService(uow, provider, 100)

		_, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
			ConversationId: uow.conversations.conversation.Id,
			Content:        "hi",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uow.messages.created) != 2 {
			t.Fatalf("expected 2 persisted messages, got %d", len(uow.messages.created))
		}
	})

	t.Run("user without override falls back to the default", func(t *testing.T) {
		uow := &fakeUow{
			conversations: &fakeConversationRepo{conversation: testConversation(userId)},
			messages:      &fakeMessageRepo{existing: 3},
			users:         &fakeUserRepo{user: &entity.User{Id: userId}},
		}
		provider := &fakeLLM{reply: "hello there"}
		svc := newTestChatService(uow, provider, 100)

		_, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
			ConversationId: uow.conversations.conversation.Id,
			Content:        "hi",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSendMessageCrisisInterception(t *testing.T) {
	userId := uuid.New()
	uow := &fakeUow{
		conversations: &fakeConversationRepo{conversation: testConversation(userId)},
		messages:      &fakeMessageRepo{existing: 4},
		users:         &fakeUserRepo{},
	}
	provider := &fakeLLM{reply: "should never be used"}
	svc := newTestChatService(uow, provider, 100)

	res, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
		ConversationId: uow.conversations.conversation.Id,
		Content:        "Lately I feel like there is no reason to live",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.calls != 0 {
		t.Fatalf("completion called %d times, want 0", provider.calls)
	}
	if !res.CrisisRedirect {
		t.Error("crisis_redirect flag not set")
	}
	if len(uow.messages.created) != 2 {
		t.Fatalf("expected 2 persisted messages, got %d", len(uow.messages.created))
	}
	if uow.messages.created[1].Content != chat.CrisisResponse {
		t.Errorf("assistant message is not the fixed crisis response")
	}
	if uow.committed != 1 {
		t.Errorf("committed %d times, want 1", uow.committed)
	}
}

func TestSendMessageCompletionFailure(t *testing.T) {
	userId := uuid.New()
	uow := &fakeUow{
		conversations: &fakeConversationRepo{conversation: testConversation(userId)},
		messages:      &fakeMessageRepo{},
		users:         &fakeUserRepo{},
	}
	provider := &fakeLLM{err: errors.New("upstream timeout")}
	svc := newTestChatService(uow, provider, 100)

	_, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
		ConversationId: uow.conversations.conversation.Id,
		Content:        "hi",
	})
	appErr := appStatus(t, err)
	if appErr.Status != 502 {
		t.Fatalf("status = %d, want 502", appErr.Status)
	}
	if len(uow.messages.created) != 0 {
		t.Errorf("%d messages persisted, want 0", len(uow.messages.created))
	}
}

func TestSendMessageEmptyContent(t *testing.T) {
	uow := &fakeUow{
		conversations: &fakeConversationRepo{},
		messages:      &fakeMessageRepo{},
		users:         &fakeUserRepo{},
	}
	svc := newTestChatService(uow, &fakeLLM{}, 100)

	_, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		ConversationId: uuid.New(),
		Content:        "   ",
	})
	if appStatus(t, err).Status != 400 {
		t.Fatal("expected 400 for blank content")
	}
}

func TestSendMessageConversationNotFound(t *testing.T) {
	uow := &fakeUow{
		conversations: &fakeConversationRepo{},
		messages:      &fakeMessageRepo{},
		users:         &fakeUserRepo{},
	}
	svc := newTestChatService(uow, &fakeLLM{}, 100)

	_, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		ConversationId: uuid.New(),
		Content:        "hi",
	})
	if appStatus(t, err).Status != 404 {
		t.Fatal("expected 404 for unknown conversation")
	}
}

func TestCreateConversationPersonaValidation(t *testing.T) {
	userId := uuid.New()

	tests := []struct {
		name       string
		gender     string
		persona    string
		wantStatus int
	}{
		{"male user female persona", "male", "diva", 0},
		{"male user male persona rejected", "male", "brad", 400},
		{"female user male persona", "female", "brad", 0},
		{"unknown persona rejected", "female", "zelda", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := &fakeUow{
				conversations: &fakeConversationRepo{},
				messages:      &fakeMessageRepo{},
				users:         &fakeUserRepo{user: &entity.User{Id: userId, Gender: tt.gender}},
			}
			svc := newTestChatService(uow, &fakeLLM{}, 100)

			persona := tt.persona
			res, err := svc.CreateConversation(context.Background(), userId, &dto.CreateConversationRequest{Persona: &persona})

			if tt.wantStatus == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Persona == nil || *res.Persona != tt.persona {
					t.Errorf("persona not bound")
				}
				return
			}

			if appStatus(t, err).Status != tt.wantStatus {
				t.Fatalf("expected status %d", tt.wantStatus)
			}
			if len(uow.conversations.created) != 0 {
				t.Error("conversation created despite invalid persona")
			}
		})
	}
}
