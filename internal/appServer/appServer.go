package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freshnest/bookingadmin/config"
	"github.com/freshnest/bookingadmin/internal/gateway"
	"github.com/freshnest/bookingadmin/internal/service"
	"github.com/freshnest/bookingadmin/internal/session"
	"github.com/freshnest/bookingadmin/internal/transport"

	"github.com/freshnest/bookingadmin/pkg/redis"
	"github.com/freshnest/bookingadmin/pkg/telegram"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12}, // ban on outdated TLS
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Session store: Redis when configured, in-memory otherwise
	var sessionStore session.Store
	if cfg.Redis.Host != "" {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		sessionStore = session.NewRedisStore(redisClient, cfg.Session.TTL)
		logrus.Info("Redis session store initialized")
	} else {
		sessionStore = session.NewMemoryStore()
		logrus.Warn("Redis not configured, sessions will not survive a restart")
	}

	// Client for the external booking/auth service
	apiClient := gateway.NewClient(&cfg.Gateway)

	// Telegram notifier for new bookings
	var notifier *telegram.Notifier
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		notifier = telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		logrus.Info("Telegram notifier initialized")
	} else {
		logrus.Warn("Telegram notifications disabled")
	}

	// Initialize services
	catalogService := service.NewCatalogService(cfg.Catalog)
	authService := service.NewAuthService(apiClient, sessionStore)
	bookingService := service.NewBookingService(apiClient, catalogService, notifier)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService)
	bookingHandler := transport.NewBookingHandler(bookingService)
	catalogHandler := transport.NewCatalogHandler(catalogService)

	// Setup HTTP server
	if cfg.Server.Mode == "release" || cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		router := transport.InitRoutes(cfg, authHandler, bookingHandler, catalogHandler, authService)
		if err := srv.Run(cfg, router); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
