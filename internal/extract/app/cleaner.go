package app

import (
	"context"
	"time"

	"audio_extract_service/internal/extract/repository"
	"audio_extract_service/pkg/config"
	"audio_extract_service/pkg/logger"
	"audio_extract_service/pkg/metrics"

	"go.uber.org/zap"
)

// Cleaner 定期清理過期音訊檔案的背景工作，將所有必要的依賴注入進來
type Cleaner struct {
	repo     repository.ArtifactRepo
	ttl      time.Duration
	interval time.Duration
	metrics  metrics.Metrics
}

// NewCleaner 建構 Cleaner 實例
func NewCleaner(repo repository.ArtifactRepo, storage config.StorageConfig, m metrics.Metrics) *Cleaner {
	return &Cleaner{
		repo:     repo,
		ttl:      time.Duration(storage.ExpirationMinutes) * time.Minute,
		interval: time.Duration(storage.CleanupIntervalMinutes) * time.Minute,
		metrics:  m,
	}
}

// Start 啟動清理迴圈，ctx 取消時結束（通常以 goroutine 執行）
// 與請求處理完全獨立；新產出的檔案 mtime 一定在 TTL 之內，
// 所以寫入中的檔案不會被誤刪，這裡不另外加鎖
func (c *Cleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	logger.Log.Info("Cleaner 已啟動",
		zap.Duration("interval", c.interval), zap.Duration("ttl", c.ttl))

	for {
		select {
		case <-ticker.C:
			c.sweepOnce()
		case <-ctx.Done():
			logger.Log.Info("Cleaner 收到停止訊號")
			return
		}
	}
}

// sweepOnce 執行一輪清理，單輪失敗不影響下一輪
func (c *Cleaner) sweepOnce() {
	count, err := c.repo.Sweep(c.ttl)
	if err != nil {
		logger.Log.Errorf("清理過期檔案失敗:", err)
		return
	}
	c.metrics.AddFilesSwept(count)
	logger.Log.Info("清理完成", zap.Int("deleted", count))
}
