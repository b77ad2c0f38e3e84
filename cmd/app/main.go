package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/sushihentaime/blognest/internal/accesspolicy"
	"github.com/sushihentaime/blognest/internal/blogservice"
	"github.com/sushihentaime/blognest/internal/common"
	"github.com/sushihentaime/blognest/internal/engagementservice"
	"github.com/sushihentaime/blognest/internal/mailservice"
	"github.com/sushihentaime/blognest/internal/userservice"
)

const sessionPurgeInterval = time.Hour

type application struct {
	config            *Config
	logger            *slog.Logger
	policy            *accesspolicy.Policy
	userService       *userservice.UserService
	blogService       *blogservice.BlogService
	engagementService *engagementservice.EngagementService
	contactService    *mailservice.ContactService
	mailService       *mailservice.MailService
	broker            *common.MessageBroker
	wg                sync.WaitGroup
}

func newLogger(env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func main() {
	cfg, err := loadConfig(".env")
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.Environment)

	if cfg.AdminEmail == "" {
		logger.Warn("ADMIN_EMAIL is not set, blog mutations are disabled")
	}

	db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBMaxIdleTime)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	err = common.MigrateDB(db, cfg.MigrationsPath)
	if err != nil {
		logger.Error("failed to migrate the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	err = common.SetupContactExchange(broker)
	if err != nil {
		logger.Error("failed to setup the contact exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	policy := accesspolicy.New(cfg.AdminEmail)
	engagement := engagementservice.NewEngagementService(db)
	cache := common.NewCache(userservice.IdentityCacheTime, 2*userservice.IdentityCacheTime)

	app := &application{
		config:            cfg,
		logger:            logger,
		policy:            policy,
		userService:       userservice.NewUserService(db, userservice.NewGoogleVerifier(cfg.GoogleUserInfoURL), cache),
		blogService:       blogservice.NewBlogService(db, engagement, policy),
		engagementService: engagement,
		contactService:    mailservice.NewContactService(broker),
		mailService:       mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.AdminEmail, cfg.MailPort, logger),
		broker:            broker,
	}

	app.mailService.DeliverContactMessages()
	defer app.mailService.Close()

	ctx, cancel := context.WithCancel(context.Background())
	app.purgeExpiredSessions(ctx, sessionPurgeInterval)

	err = app.serve(cfg.Port)
	cancel()
	app.wg.Wait()

	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// purgeExpiredSessions deletes expired session tokens every interval until ctx is cancelled.
func (app *application) purgeExpiredSessions(ctx context.Context, interval time.Duration) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := app.userService.PurgeExpiredSessions(ctx)
				if err != nil {
					app.logger.Error("could not purge expired sessions", slog.String("error", err.Error()))
					continue
				}
				app.logger.Info("purged expired sessions", slog.Int64("count", n))
			case <-ctx.Done():
				return
			}
		}
	}()
}
