package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"audio_extract_service/internal/extract/api/handlers"
	"audio_extract_service/internal/extract/api/router"
	"audio_extract_service/internal/extract/app"
	"audio_extract_service/internal/extract/repository"
	"audio_extract_service/pkg/config"
	"audio_extract_service/pkg/logger"
	"audio_extract_service/pkg/metrics"
	testtool "audio_extract_service/pkg/test_tool"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	fiber_recover "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.AudioService, config.EnvConfig.AudioServiceLogPath)

	cfg := config.LoadConfig[config.Extract](config.EnvConfig.AudioService, config.EnvConfig.AudioServiceYAMLPath)
	cfg.Defaults()

	// 1. 初始化音訊目錄
	repo, err := repository.NewArtifactRepo(cfg.Storage.Dir)
	if err != nil {
		logger.Log.Fatal("Unable to init artifact storage", zap.Error(err))
	}

	m := metrics.NewProm("audio_extract")

	testtool.StartPprof()

	// 2. 啟動背景清理
	cleaner := app.NewCleaner(repo, cfg.Storage, m)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// 啟動 Cleaner（以 goroutine 執行）
	go cleaner.Start(ctx)

	usecase := app.NewExtractUseCase(repo, cfg, m)
	extractHandler := handlers.NewExtractHandler(usecase)

	// 3. 建立 Fiber 應用，錯誤一律回 JSON
	r := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Server error"
			if e, ok := err.(*fiber.Error); ok && e.Code != fiber.StatusInternalServerError {
				code = e.Code
				msg = e.Message
			}
			logger.Log.Errorf("handler err :", err)
			return c.Status(code).JSON(fiber.Map{"error": msg})
		},
	})
	r.Use(fiber_recover.New())

	// 添加日志中间件
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.AudioServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file, // 将日志输出到文件
	}))

	// 注册路由
	router.RegisterRoutes(r, extractHandler, cfg.Storage.Dir)

	// 4. 優雅關閉：收到訊號後停掉 HTTP 與 Cleaner
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Log.Info("Shutting down ...")
		cancel()
		if err := r.Shutdown(); err != nil {
			logger.Log.Errorf("Shutdown err :", err)
		}
	}()

	// 启动服务器
	if err := r.Listen(cfg.IP + ":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
	logger.Log.Sync()
}
