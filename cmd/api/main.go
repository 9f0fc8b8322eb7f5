package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasklist/internal/adapter/auth"
	dbadapter "tasklist/internal/adapter/db"
	httpadapter "tasklist/internal/adapter/http"
	"tasklist/internal/adapter/http/handlers"
	httpmiddleware "tasklist/internal/adapter/http/middleware"
	appservice "tasklist/internal/app/service"
	"tasklist/internal/config"
	"tasklist/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.DbMigrate {
		if err := dbadapter.Migrate(db); err != nil {
			logger.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	tokens, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		logger.Fatal("failed to configure authentication", zap.Error(err))
	}

	listRepository := dbadapter.NewListRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	listService := appservice.NewListService(listRepository)
	taskService := appservice.NewTaskService(taskRepository, listRepository)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestIDMiddleware(),
		httpmiddleware.GinZapMiddleware(logger),
	)
	httpadapter.RegisterRoutes(
		r,
		tokens,
		handlers.NewHealthHandler(db, cfg.AppName, cfg.AppVersion),
		handlers.NewListHandler(listService, cfg.PageSize),
		handlers.NewTaskHandler(taskService, listService, cfg.PageSize),
	)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("driver", cfg.DbDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
