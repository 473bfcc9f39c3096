package app

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"school-backend/internal"
	"school-backend/internal/config"
	"school-backend/internal/db"
	"school-backend/internal/handlers"
	"school-backend/internal/mailer"
	"school-backend/internal/metrics"
	"school-backend/internal/store"
	"school-backend/internal/upload"
)

func Run() {
	cfg := config.Load()
	logger := internal.NewLogger(os.Stdout, cfg.Environment)

	// Init DB
	client, err := db.Connect(context.Background(), cfg.MongoURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to mongodb", "db", cfg.DBName)

	gateway := store.New(client.Database(cfg.DBName))
	notifier := mailer.NewService(buildSender(cfg), cfg.AdminEmail, logger)

	// Staged uploads live next to, not inside, the statically served tree.
	saver, err := upload.NewSaver(filepath.Join(cfg.UploadDir, "photos"), cfg.UploadDir+".tmp", cfg.UploadPolicy)
	if err != nil {
		logger.Error("failed to prepare upload dir", "error", err)
		os.Exit(1)
	}

	// Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit: upload.MaxFileSize + 1024*1024,
	})

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
	}))
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		metrics.RequestsTotal.WithLabelValues(
			c.Method(),
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	})

	// Serve uploaded files
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Routes
	api := app.Group("/api")
	api.Get("/", handlers.HealthHandler())

	admissions := api.Group("/admissions")
	admissions.Post("/enquiry", handlers.CreateEnquiryHandler(gateway, notifier, logger))
	admissions.Get("/enquiries", handlers.ListEnquiriesHandler(gateway, logger))

	contact := api.Group("/contact")
	contact.Post("/message", handlers.CreateMessageHandler(gateway, notifier, logger))
	contact.Get("/messages", handlers.ListMessagesHandler(gateway, logger))

	photos := api.Group("/photos")
	photos.Post("/upload", handlers.UploadPhotoHandler(gateway, saver, logger))
	photos.Get("/", handlers.ListPhotosHandler(gateway, logger))
	photos.Get("/:id", handlers.GetPhotoHandler(gateway, logger))
	photos.Delete("/:id", handlers.DeletePhotoHandler(gateway, logger))

	events := api.Group("/events")
	events.Post("/", handlers.CreateEventHandler(gateway, logger))
	events.Get("/", handlers.ListEventsHandler(gateway, logger))
	events.Put("/:id", handlers.UpdateEventHandler(gateway, logger))
	events.Delete("/:id", handlers.DeleteEventHandler(gateway, logger))

	// Start Server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()
	logger.Info("server started", "port", cfg.Port)

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	logger.Info("gracefully shutting down")
	_ = app.Shutdown()
	if err := db.Close(client); err != nil {
		logger.Error("failed to close database", "error", err)
	}
	logger.Info("server shutdown complete")
}

// buildSender picks the mail transport strategy from configuration. SMTP is
// the default; MAILER_DRIVER=mailgun selects the API transport.
func buildSender(cfg *config.Config) mailer.Sender {
	if cfg.MailerDriver == config.MailerDriverMailgun {
		return mailer.NewMailgunSender(mailer.MailgunConfig{
			APIKey: cfg.MailgunAPIKey,
			Domain: cfg.MailgunDomain,
			From:   cfg.SenderEmail,
		}, nil)
	}
	return mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SenderEmail,
	})
}
