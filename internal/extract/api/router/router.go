package router

import (
	"audio_extract_service/internal/extract/api/handlers"
	"audio_extract_service/internal/extract/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes 注册音訊抽取相關的路由
// @title Audio Extract Service API
// @version 1.0
// @description API documentation for Audio Extract Service
// @BasePath /
func RegisterRoutes(app *fiber.App, extractHandler *handlers.ExtractHandler, storageDir string) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/download", extractHandler.DownloadAudio)

	// 發布後的音訊檔直接走靜態路由
	app.Static(domain.PublicAudioPath, storageDir)

	// 其餘路徑一律回 JSON 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Route not found"})
	})
}
