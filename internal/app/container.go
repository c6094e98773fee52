package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/config"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/infrastructure/auth"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/infrastructure/classifier"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/infrastructure/database"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/infrastructure/notifications"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/infrastructure/repositories"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo    domain.UserRepository
	SessionRepo domain.SessionRepository
	MedRepo     domain.MedicationRepository

	// Services
	PasswordSvc domain.PasswordService
	Mailer      domain.Mailer
	Classifier  domain.Classifier
	SessionSvc  domain.SessionService
	AccountSvc  domain.AccountService
	SearchSvc   domain.SearchService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
	c.MedRepo = repositories.NewMedicationRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.Mailer = notifications.NewSMTPService(c.Config.SMTPHost, c.Config.SMTPPort, c.Config.SMTPUsername, c.Config.SMTPPassword)
	c.Classifier = classifier.NewHTTPClassifier(c.Config.ClassifierURL, c.Config.ClassifierTimeout)

	c.SessionSvc = services.NewSessionService(c.SessionRepo)
	c.AccountSvc = services.NewAccountService(
		c.UserRepo,
		c.MedRepo,
		c.SessionSvc,
		c.PasswordSvc,
		c.Mailer,
		services.NewAuditLogger(),
		c.Config.MailFrom,
	)
	c.SearchSvc = services.NewSearchService(c.MedRepo, c.Classifier)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
