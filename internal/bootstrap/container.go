package bootstrap

import (
	"context"
	"log"
	"time"

	"wellness-be/internal/config"
	"wellness-be/internal/controller"
	"wellness-be/internal/handler"
	"wellness-be/internal/pkg/logger"
	"wellness-be/internal/pkg/mailer"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"
	"wellness-be/internal/service"
	"wellness-be/internal/websocket"
	"wellness-be/pkg/llm/factory"
	"wellness-be/pkg/llm/openai"

	pktNats "wellness-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const assessmentTopic = "assessment.submitted"

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	AssessmentController controller.IAssessmentController
	ChatController       controller.IChatController
	VideoController      controller.IVideoController
	CommunityController  controller.ICommunityController
	ProgressController   controller.IProgressController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Blocked accounts are rejected on every authenticated request, not just
	// at sign-in.
	serverutils.BlockedCheck = func(ctx context.Context, userId uuid.UUID) (bool, error) {
		uow := uowFactory.NewUnitOfWork(ctx)
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err != nil || user == nil {
			return false, err
		}
		return user.IsBlocked, nil
	}

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// OTP rate limiters, disabled when Redis is unreachable
	var sendLimiter, verifyLimiter *serverutils.RateLimiter
	if rdb != nil {
		sendLimiter = serverutils.NewRateLimiter(rdb, "otp_send")
		verifyLimiter = serverutils.NewRateLimiter(rdb, "otp_verify")
	}

	// LLM provider
	completionTimeout := time.Duration(cfg.AI.CompletionTimeout) * time.Second
	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:      cfg.AI.Provider,
		BaseURL:       cfg.AI.BaseURL,
		APIKey:        cfg.AI.APIKey,
		ModelName:     cfg.AI.ChatModel,
		OllamaBaseURL: cfg.AI.OllamaBaseURL,
		Timeout:       completionTimeout,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.AI.Provider, cfg.AI.ChatModel)

	var titler service.TitleGenerator
	if cfg.AI.APIKey != "" {
		titler = openai.NewTitler(cfg.AI.APIKey, cfg.AI.TitleModel)
	}

	// Shuffle cache for anonymous and unprofiled video feeds
	shuffleCache := gocache.New(time.Hour, 2*time.Hour)

	// 3. Services
	publisherService := service.NewPublisherService(assessmentTopic, pubSub)

	userService := service.NewUserService(uowFactory)
	authService := service.NewAuthService(
		uowFactory,
		emailService,
		sendLimiter,
		verifyLimiter,
		userService,
		sysLogger,
		cfg.Otp,
		cfg.JWT,
	)

	assessmentService := service.NewAssessmentService(uowFactory, publisherService, sysLogger)
	recommendationService := service.NewRecommendationService(uowFactory, assessmentService, shuffleCache, cfg.Feed)

	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		titler,
		assessmentService,
		sysLogger,
		cfg.Chat.MessageLimit,
		completionTimeout,
	)

	communityService := service.NewCommunityService(uowFactory, natsPub, sysLogger)
	progressService := service.NewProgressService(uowFactory, assessmentService, recommendationService)

	consumerService := service.NewConsumerService(
		pubSub,
		assessmentTopic,
		uowFactory,
		recommendationService,
		emailService,
		sysLogger,
	)

	// 3.5 Notification system
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		UserController:       controller.NewUserController(userService),
		AssessmentController: controller.NewAssessmentController(assessmentService, recommendationService),
		ChatController:       controller.NewChatController(chatService),
		VideoController:      controller.NewVideoController(recommendationService),
		CommunityController:  controller.NewCommunityController(communityService),
		ProgressController:   controller.NewProgressController(progressService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
