package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"interview-prep-be/internal/config"
	"interview-prep-be/internal/controller"
	"interview-prep-be/internal/pkg/logger"
	"interview-prep-be/internal/pkg/mailer"
	"interview-prep-be/internal/repository/implementation"
	"interview-prep-be/internal/repository/memory"
	redisstore "interview-prep-be/internal/repository/redis"
	"interview-prep-be/internal/repository/unitofwork"
	"interview-prep-be/internal/service"
	"interview-prep-be/pkg/interview"
	"interview-prep-be/pkg/interview/llmprovider"
	"interview-prep-be/pkg/llm/factory"
	pkgNats "interview-prep-be/pkg/nats"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	ResumeController    controller.IResumeController
	CourseController    controller.ICourseController
	InterviewController controller.IInterviewController
	AdminController     controller.IAdminController

	// Background services, run by main.go.
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// In-process event bus for interview lifecycle messages
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(pubSub, cfg.App.EventTopic)

	// LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	questionProvider := llmprovider.NewProvider(llmProvider, sysLogger)

	// Session store
	sessionStore := newSessionStore(db, cfg, sysLogger)

	// NATS audit publisher, best effort
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Services
	authService := service.NewAuthService(uowFactory, emailService, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory)
	resumeService := service.NewResumeService(uowFactory)
	courseService := service.NewCourseService(uowFactory)
	interviewService := service.NewInterviewService(
		sessionStore,
		questionProvider,
		uowFactory,
		publisherService,
		natsPub,
		sysLogger,
	)
	adminService := service.NewAdminService(uowFactory, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EventTopic,
		sessionStore,
		uowFactory,
		emailService,
		sysLogger,
	)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		ResumeController:    controller.NewResumeController(resumeService),
		CourseController:    controller.NewCourseController(courseService),
		InterviewController: controller.NewInterviewController(interviewService),
		AdminController:     controller.NewAdminController(adminService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

func newSessionStore(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) interview.SessionStore {
	switch cfg.App.SessionStore {
	case "redis":
		opt, err := goredis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &goredis.Options{Addr: cfg.App.RedisURL}
		}
		store, err := redisstore.NewSessionStore(opt.Addr, opt.Password, opt.DB)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize Redis session store: %v", err)
		}
		sysLogger.Info("Bootstrap", "Using Redis session store", nil)
		return store
	case "memory":
		sysLogger.Info("Bootstrap", "Using in-memory session store", nil)
		return memory.NewSessionStore()
	default:
		sysLogger.Info("Bootstrap", "Using Postgres session store", nil)
		return implementation.NewInterviewSessionRepository(db)
	}
}
