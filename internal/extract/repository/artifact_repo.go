package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"audio_extract_service/internal/extract/domain"
	"audio_extract_service/pkg"
	errprocess "audio_extract_service/pkg/err"
	"audio_extract_service/pkg/logger"

	"go.uber.org/zap"
)

// ArtifactRepo 管理音訊檔案的存放與過期
// 檔案系統就是唯一的持久層：檔案存在與 mtime 即為狀態
type ArtifactRepo interface {
	Dir() string
	Path(fileName string) string
	Remove(fileName string)
	Sweep(ttl time.Duration) (int, error)
}

type artifactRepo struct {
	dir string
}

// NewArtifactRepo 建立一個新的 ArtifactRepo，目錄不存在時會建立
func NewArtifactRepo(dir string) (ArtifactRepo, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		errMsg := fmt.Sprintf("dir[%s] 建立音訊目錄失敗 : %v", dir, err)
		return nil, errprocess.Set(errprocess.KindInternal, errMsg)
	}
	return &artifactRepo{dir: dir}, nil
}

// Dir 音訊目錄，靜態路由掛載用
func (r *artifactRepo) Dir() string {
	return r.dir
}

// Path 組出檔案的完整路徑
func (r *artifactRepo) Path(fileName string) string {
	return filepath.Join(r.dir, fileName)
}

// Remove 刪除檔案，檔案不存在時是 no-op
func (r *artifactRepo) Remove(fileName string) {
	if err := os.Remove(r.Path(fileName)); err != nil && !os.IsNotExist(err) {
		logger.Log.Error("刪除音訊檔案失敗",
			zap.String("file", fileName), zap.Error(err))
	}
}

// Sweep 刪除 mtime 超過 ttl 的音訊檔案，回傳刪除數量
// 只看第一層目錄，跳過子目錄與非音訊檔；單檔刪除失敗不中斷掃描
func (r *artifactRepo) Sweep(ttl time.Duration) (int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		// 目錄不存在時本輪清理直接略過
		if os.IsNotExist(err) {
			logger.Log.Warn("音訊目錄不存在，略過本輪清理", zap.String("dir", r.dir))
			return 0, nil
		}
		errMsg := fmt.Sprintf("dir[%s] 讀取音訊目錄失敗 : %v", r.dir, err)
		return 0, errprocess.Set(errprocess.KindInternal, errMsg)
	}

	cutoff := time.Now().Add(-ttl)
	count := 0

	for _, entry := range entries {
		if entry.IsDir() || !pkg.Contains(domain.AudioExts, filepath.Ext(entry.Name())) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logger.Log.Error("讀取檔案資訊失敗",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}

		// mtime 早於 cutoff 代表已過期
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(r.Path(entry.Name())); err != nil {
				logger.Log.Error("刪除過期檔案失敗",
					zap.String("file", entry.Name()), zap.Error(err))
				continue
			}
			logger.Log.Info("已刪除過期檔案", zap.String("file", entry.Name()))
			count++
		}
	}

	return count, nil
}
