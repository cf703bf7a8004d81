package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/venoajie/trading-web-project/src/api"
	"github.com/venoajie/trading-web-project/src/api/controllers"
	"github.com/venoajie/trading-web-project/src/api/handlers"
	"github.com/venoajie/trading-web-project/src/clients/librarian"
	"github.com/venoajie/trading-web-project/src/config"
	"github.com/venoajie/trading-web-project/src/database"
	"github.com/venoajie/trading-web-project/src/utils"
	"github.com/venoajie/trading-web-project/src/utils/auth"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Println(err, "Error while loading .env")
	}

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	logger := utils.NewLogger(utils.ParseLevel(cfg.Service.LogLevel), false, "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, errC, err := run(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Couldn't run")
		return
	}
	defer app.close(logger)

	select {
	case err := <-errC:
		if err != nil {
			logger.WithError(err).Error("Error while running")
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}
}

type application struct {
	httpServer *http.Server
	librarian  *librarian.LibrarianServiceClient
	db         *database.DB
}

// close stops accepting requests, drains in-flight ones and then releases
// the librarian client and the database pool.
func (a *application) close(logger *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
	if a.librarian.API.Started() {
		logger.Info("Closing Librarian connections")
	}
	a.librarian.Close()
	a.db.Close()
	logger.Info("Shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*application, <-chan error, error) {
	errC := make(chan error, 1)

	db, err := database.SetupDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Databases.SQL.MigrateOnStart {
		if err := database.Migrate(db.SQL); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	librarianClient, err := librarian.NewClient(cfg)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	tokens := auth.NewTokenManager(cfg.Security.SecretKey, cfg.Security.Algorithm, cfg.Security.AccessTokenTTL())
	controller := controllers.NewController(db.Gorm, librarianClient, tokens)
	handler := handlers.NewHandler(controller, tokens, logger)
	server := api.NewServer(handler, cfg.Service.CORSAllowedOrigins)
	httpServer := api.NewHTTPServer(server, cfg.Service.Port)

	go func() {
		logger.WithField("port", cfg.Service.Port).Info("Starting server")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	return &application{httpServer: httpServer, librarian: librarianClient, db: db}, errC, nil
}
