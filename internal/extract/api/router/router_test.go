package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"audio_extract_service/internal/extract/api/handlers"
	"audio_extract_service/internal/extract/domain"
	errprocess "audio_extract_service/pkg/err"
	"audio_extract_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUseCase 固定回傳，路由測試不關心抽取邏輯
type stubUseCase struct{}

func (stubUseCase) ExtractAudio(ctx context.Context, reference string) (*domain.ExtractRes, error) {
	if reference == "" {
		return nil, &errprocess.Error{Kind: errprocess.KindInvalidReference, Msg: "No URL provided"}
	}
	return &domain.ExtractRes{Success: true, Title: "Test Video"}, nil
}

func TestRegisterRoutes(t *testing.T) {
	logger.SetNewNop()

	storageDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(storageDir, "job.mp3"), []byte("audio"), 0644))

	app := fiber.New()
	RegisterRoutes(app, handlers.NewExtractHandler(stubUseCase{}), storageDir)

	// **情境 1: 健康檢查**
	t.Run("健康檢查", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	// **情境 2: /download 有接上 handler**
	t.Run("download 路由有接上", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/download?url=dQw4w9WgXcQ", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	// **情境 3: 發布的音訊檔走靜態路由**
	t.Run("靜態路由提供音訊檔", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/static/audio/job.mp3", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "audio", string(body))
	})

	// **情境 4: /metrics 有輸出**
	t.Run("metrics 路由有接上", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	// **情境 5: 未知路徑回 JSON 404**
	t.Run("未知路徑回 JSON 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/no/such/route", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "Route not found", payload["error"])
	})
}
