package bootstrap

import (
	"log"

	"github.com/Lum1n0sity/scholarthynk-api/internal/config"
	"github.com/Lum1n0sity/scholarthynk-api/internal/controller"
	"github.com/Lum1n0sity/scholarthynk-api/internal/pkg/logger"
	"github.com/Lum1n0sity/scholarthynk-api/internal/pkg/mailer"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/implementation"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/unitofwork"
	"github.com/Lum1n0sity/scholarthynk-api/internal/service"

	pktNats "github.com/Lum1n0sity/scholarthynk-api/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	FileViewerController controller.IFileViewerController
	AssignmentController controller.IAssignmentController
	EventController      controller.IEventController
	AdminController      controller.IAdminController

	// Shared infrastructure exposed for the server layer
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Infrastructure
	// NATS audit stream. Publisher and subscriber both tolerate a nil
	// connection so the API keeps serving when the broker is down.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. Services
	authService := service.NewAuthService(uowFactory, emailService, natsPub, &cfg.Auth)
	userService := service.NewUserService(uowFactory, natsPub, cfg.App.UploadDir)
	fileViewerService := service.NewFileViewerService(uowFactory, natsPub)
	assignmentService := service.NewAssignmentService(uowFactory)
	eventService := service.NewEventService(uowFactory)
	logService := service.NewLogService(sysLogger)

	// Audit trail worker: consumes the audit stream into system_logs.
	auditRepo := implementation.NewAuditLogRepository(db)
	auditService := service.NewAuditService(auditRepo, natsSub, sysLogger)
	if natsSub != nil {
		go auditService.Start()
	}

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		UserController:       controller.NewUserController(userService),
		FileViewerController: controller.NewFileViewerController(fileViewerService),
		AssignmentController: controller.NewAssignmentController(assignmentService),
		EventController:      controller.NewEventController(eventService),
		AdminController:      controller.NewAdminController(logService, auditService),

		Logger: sysLogger,
	}
}
