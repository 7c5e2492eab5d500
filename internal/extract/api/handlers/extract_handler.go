package handlers

import (
	"time"

	"audio_extract_service/internal/extract/app"
	errprocess "audio_extract_service/pkg/err"

	"github.com/gofiber/fiber/v2"
)

// ExtractHandler 處理音訊抽取相關的 HTTP 請求
type ExtractHandler struct {
	Usecase app.ExtractUseCase
}

// NewExtractHandler 建立新的 ExtractHandler
func NewExtractHandler(usecase app.ExtractUseCase) *ExtractHandler {
	return &ExtractHandler{
		Usecase: usecase,
	}
}

// DownloadAudio 下載 YouTube 音訊
// @Summary 下載 YouTube 音訊
// @Description 輸入 YouTube URL 或影片 ID，回傳有時效的音訊下載連結
// @Tags Extract
// @Produce json
// @Param url query string true "YouTube URL 或影片 ID"
// @Success 200 {object} map[string]interface{} "抽取成功"
// @Failure 400 {object} map[string]interface{} "輸入不合法"
// @Failure 500 {object} map[string]interface{} "抽取失敗"
// @Router /download [get]
func (h *ExtractHandler) DownloadAudio(c *fiber.Ctx) error {
	reference := c.Query("url")

	res, err := h.Usecase.ExtractAudio(c.Context(), reference)
	if err != nil {
		return c.Status(errprocess.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":            res.Success,
		"title":              res.Title,
		"audio_url":          res.AudioURL,
		"expiration":         res.Expiration.Format(time.RFC3339),
		"expires_in_minutes": res.ExpiresInMinutes,
	})
}
