package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"youtube-clone/infrastructure/configuration"
	"youtube-clone/infrastructure/logger"
	"youtube-clone/infrastructure/persistence"
	httpHandler "youtube-clone/interfaces/http"
	"youtube-clone/server"
	"youtube-clone/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	cfg := configuration.C

	client, err := persistence.NewMongoDb(
		cfg.Database.Mongo.Host,
		cfg.Database.Mongo.Port,
		cfg.Database.Mongo.User,
		cfg.Database.Mongo.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("MongoDB connection failed")
	}
	logger.GetLogger().Info("MongoDB connected successfully")
	db := client.Database(cfg.Database.Mongo.Name)

	if err := persistence.EnsureIndexes(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while ensuring indexes")
	}

	userRepository := persistence.NewUserRepository(db)
	channelRepository := persistence.NewChannelRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	userViewRepository := persistence.NewUserViewRepository(db)
	videoViewRepository := persistence.NewVideoViewRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepository, userViewRepository, cfg.App.SecretKey)
	channelUsecase := usecase.NewChannelUsecase(channelRepository, userRepository, userViewRepository, videoViewRepository)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, channelRepository, videoViewRepository)
	commentUsecase := usecase.NewCommentUsecase(videoRepository)
	reactionUsecase := usecase.NewReactionUsecase(videoRepository, userRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(userRepository, channelRepository)
	playlistUsecase := usecase.NewPlaylistUsecase(userRepository, userViewRepository)

	router := server.InitiateRouter(
		httpHandler.NewUserHandler(userUsecase),
		httpHandler.NewChannelHandler(channelUsecase),
		httpHandler.NewVideoHandler(videoUsecase),
		httpHandler.NewCommentHandler(commentUsecase),
		httpHandler.NewReactionHandler(reactionUsecase),
		httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		httpHandler.NewPlaylistHandler(playlistUsecase),
		userRepository,
		cfg.App.SecretKey,
		cfg.Cors.Origins,
	)

	logger.GetLogger().WithField("port", cfg.App.Port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.App.Port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application terminated")
	}

	if err := client.Disconnect(context.Background()); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while disconnecting MongoDB")
	}
}
