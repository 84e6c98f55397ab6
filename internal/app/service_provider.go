package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/nusclubs/clubconnect/internal/adapters/config"
	"github.com/nusclubs/clubconnect/internal/adapters/primary/cli"
	"github.com/nusclubs/clubconnect/internal/adapters/secondary/exchange"
	"github.com/nusclubs/clubconnect/internal/adapters/secondary/gormstore"
	"github.com/nusclubs/clubconnect/internal/adapters/secondary/photos"
	"github.com/nusclubs/clubconnect/internal/adapters/secondary/smtp"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/service"
	"github.com/nusclubs/clubconnect/internal/ports/primary"
	"github.com/nusclubs/clubconnect/internal/ports/secondary"
	"github.com/nusclubs/clubconnect/pkg/logger"
)

type serviceProvider struct {
	// Configuration
	cfg *config.Config

	// Infrastructure
	db         *gorm.DB
	smtpDialer *gomail.Dialer

	// Secondary adapters
	storage     secondary.ClubBookStorage
	exchange    secondary.MemberExchange
	emailClient secondary.EmailClient
	photoStore  secondary.PhotoStorage

	// Domain layer
	model  *service.Model
	logic  primary.Logic
	backup *service.Backup

	// Primary adapter
	cliHandler *cli.Handler
}

func newServiceProvider() *serviceProvider {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(fmt.Errorf("failed to create config: %w", err))
	}

	return &serviceProvider{
		cfg: cfg,
	}
}

// Infrastructure dependencies

func (s *serviceProvider) DB() *gorm.DB {
	if s.db == nil {
		database, err := gormstore.Open(s.cfg.Storage.Driver(), s.cfg.Storage.DSN())
		if err != nil {
			panic(fmt.Errorf("failed to connect to the database: %w", err))
		}

		if s.cfg.Logger.Debug() {
			database.Logger = gormLogger.New(
				log.New(os.Stdout, "\r\n", log.LstdFlags),
				gormLogger.Config{
					SlowThreshold: time.Second,
					LogLevel:      gormLogger.Info,
					Colorful:      true,
				},
			)
		}
		logger.Log.Info("Successfully connected to the database")

		s.db = database
	}

	return s.db
}

func (s *serviceProvider) SMTPDialer() *gomail.Dialer {
	if s.smtpDialer == nil {
		s.smtpDialer = gomail.NewDialer(
			s.cfg.SMTP.Host(),
			s.cfg.SMTP.Port(),
			s.cfg.SMTP.Login(),
			s.cfg.SMTP.Password(),
		)
	}

	return s.smtpDialer
}

// Secondary adapters

func (s *serviceProvider) Storage() secondary.ClubBookStorage {
	if s.storage == nil {
		s.storage = gormstore.New(s.DB())
	}

	return s.storage
}

func (s *serviceProvider) Exchange() secondary.MemberExchange {
	if s.exchange == nil {
		s.exchange = exchange.New(s.namedLogger("exchange"))
	}

	return s.exchange
}

// EmailClient returns nil when no SMTP host is configured; the email command
// then reports that sending is unavailable.
func (s *serviceProvider) EmailClient() secondary.EmailClient {
	if s.emailClient == nil && s.cfg.SMTP.Host() != "" {
		s.emailClient = smtp.NewClient(s.SMTPDialer(), s.cfg.SMTP.From(), s.namedLogger("smtp"))
	}

	return s.emailClient
}

func (s *serviceProvider) PhotoStorage() secondary.PhotoStorage {
	if s.photoStore == nil {
		s.photoStore = photos.NewStorage(s.cfg.App.PhotosDir(), s.namedLogger("photos"))
	}

	return s.photoStore
}

// Domain layer

func (s *serviceProvider) Model() *service.Model {
	if s.model == nil {
		modelLogger := s.namedLogger("model")

		initial, err := s.Storage().Load(context.Background())
		if err != nil {
			modelLogger.Warnf("failed to load club book, starting empty: %v", err)
			initial = entity.NewClubBook()
		}

		s.model = service.NewModel(
			initial,
			s.Exchange(),
			s.EmailClient(),
			s.PhotoStorage(),
			modelLogger,
		)

		storage := s.Storage()
		saveLogger := s.namedLogger("storage")
		s.model.Subscribe(func(book *entity.ClubBook) {
			if err := storage.Save(context.Background(), book); err != nil {
				saveLogger.Errorf("failed to save club book: %v", err)
			}
		})
	}

	return s.model
}

func (s *serviceProvider) Logic() primary.Logic {
	if s.logic == nil {
		s.logic = service.NewLogic(s.Model(), s.namedLogger("logic"))
	}

	return s.logic
}

func (s *serviceProvider) Backup() *service.Backup {
	if s.backup == nil {
		s.backup = service.NewBackup(
			s.Model(),
			s.Exchange(),
			s.cfg.Backup.Dir(),
			s.cfg.Backup.Spec(),
			s.namedLogger("backup"),
		)
	}

	return s.backup
}

// Primary adapter

func (s *serviceProvider) CLIHandler() *cli.Handler {
	if s.cliHandler == nil {
		s.cliHandler = cli.NewHandler(s.Logic(), os.Stdin, os.Stdout, s.namedLogger("cli"))
	}

	return s.cliHandler
}

func (s *serviceProvider) namedLogger(name string) *zap.SugaredLogger {
	l, err := logger.Named(name)
	if err != nil {
		panic(fmt.Errorf("failed to create %s logger: %w", name, err))
	}
	return l
}

// Cfg returns the config
func (s *serviceProvider) Cfg() *config.Config {
	return s.cfg
}
