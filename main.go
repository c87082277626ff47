// File: speakerhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"speakerhub/config"
	"speakerhub/database"
	profileRepoPkg "speakerhub/database/repository/profile"
	speakerRepoPkg "speakerhub/database/repository/speaker"
	"speakerhub/handlers"
	"speakerhub/middleware"
	"speakerhub/routes"
	"speakerhub/services/avatar"
	"speakerhub/services/notification"
	"speakerhub/services/profile"
	"speakerhub/services/staging"
	"speakerhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	db := database.DB()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Staged signup data and avatar events live in Redis when it is configured.
	healthChecks := map[string]utils.HealthCheck{
		"mongo": func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) },
	}
	var stagedStore staging.Store
	var avatarPublisher avatar.Publisher = avatar.LocalPublisher{}
	if config.AppConfig.RedisAddr != "" {
		stagedStore = staging.NewRedisStore(utils.GetStagedCacheClient(), config.AppConfig.StagedTTL)
		healthChecks["redis_staged"] = func(ctx context.Context) error { return utils.GetStagedCacheClient().Ping(ctx).Err() }
		healthChecks["redis_events"] = func(ctx context.Context) error { return utils.GetEventsClient().Ping(ctx).Err() }

		bridge := avatar.NewRedisBridge(utils.GetEventsClient(), config.AppConfig.AvatarChannel, avatar.Updates, logger)
		avatarPublisher = bridge
		go func() {
			if err := bridge.Run(bgCtx); err != nil {
				logger.Error("main: avatar bridge stopped", zap.Error(err))
			}
		}()
	} else {
		logger.Warn("main: REDIS_ADDR not set, staged signup data is kept in memory")
		stagedStore = staging.NewMemoryStore()
	}
	utils.StartHealthMonitor(bgCtx, 60*time.Second, healthChecks)

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo(db)
	speakerRepo := speakerRepoPkg.NewMongoSpeakerRepo(db)

	// services.
	profileService := &profile.DefaultProfileService{
		Profiles: profileRepo,
		Speakers: speakerRepo,
		Staged:   stagedStore,
		Logger:   logger.Named("profile"),
	}

	var push notification.Notifier
	fcm, err := utils.FirebaseMessaging(bgCtx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize firebase messaging: %v", err)
	}
	if fcm != nil {
		push = notification.NewPushNotifier(fcm, profileRepo, logger.Named("push"))
	}

	signupHandler := handlers.NewSignupHandler(stagedStore)
	profileHandler := &handlers.ProfileHandler{
		Completion:   profileService,
		Profiles:     profileService,
		Storage:      cloudinaryStorageService,
		Avatars:      avatarPublisher,
		Push:         push,
		AvatarFolder: config.AppConfig.AvatarFolder,
	}

	handlerBundle := &handlers.HandlerBundle{
		StagePendingSpeakerHandler: signupHandler.StagePendingSpeakerHandler,
		StagePendingUserHandler:    signupHandler.StagePendingUserHandler,
		GetPendingHandler:          signupHandler.GetPendingHandler,

		CompleteProfileHandler: profileHandler.CompleteProfileHandler,
		GetMyProfileHandler:    profileHandler.GetMyProfileHandler,
		UploadAvatarHandler:    profileHandler.UploadAvatarHandler,

		AvatarStreamHandler: handlers.AvatarStreamHandler(avatar.Updates),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
