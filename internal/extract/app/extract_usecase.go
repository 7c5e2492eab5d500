package app

import (
	"context"
	"strings"
	"time"

	"audio_extract_service/internal/extract/domain"
	"audio_extract_service/internal/extract/repository"
	"audio_extract_service/pkg/config"
	errprocess "audio_extract_service/pkg/err"
	"audio_extract_service/pkg/logger"
	"audio_extract_service/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExtractUseCase 這裡封裝了對外提供的應用服務
type ExtractUseCase interface {
	ExtractAudio(ctx context.Context, reference string) (*domain.ExtractRes, error)
}

type extractUseCase struct {
	Repo    repository.ArtifactRepo
	Cfg     config.Extract
	Metrics metrics.Metrics
}

// NewExtractUseCase 建立一個新的 ExtractUseCase
func NewExtractUseCase(repo repository.ArtifactRepo,
	cfg config.Extract,
	m metrics.Metrics,
) ExtractUseCase {
	return &extractUseCase{
		Repo:    repo,
		Cfg:     cfg,
		Metrics: m,
	}
}

// 讓 `extract_usecase` test mock使用包裝函數
var (
	newJobID = func() string {
		return uuid.New().String()
	}

	downloadAudio = DownloadAudio

	convertAudio = ConvertForTranscription
)

// ExtractAudio 單一請求的完整流程：驗證 → 下載 → (選擇性轉檔) → 發布
// 任何失敗路徑都會把已產生的檔案清掉；panic 在這裡收斂成 internal 錯誤
func (s *extractUseCase) ExtractAudio(ctx context.Context, reference string) (res *domain.ExtractRes, err error) {
	s.Metrics.IncExtractRequests()

	// 失敗清理集中在這裡：任何失敗（含 panic）都把已產生的檔案清掉
	var rawName, wavName string
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("抽取流程發生未預期錯誤", zap.Any("panic", r))
			res = nil
			err = errprocess.Set(errprocess.KindInternal, "Server error")
		}
		if err != nil {
			if rawName != "" {
				s.Repo.Remove(rawName)
			}
			if wavName != "" {
				s.Repo.Remove(wavName)
			}
			s.Metrics.IncExtractCompleted(string(errprocess.KindOf(err)))
			return
		}
		s.Metrics.IncExtractCompleted("success")
	}()

	// 1. 驗證輸入
	if reference == "" {
		return nil, errprocess.Set(errprocess.KindInvalidReference, "No URL provided")
	}
	if !domain.IsValidReference(reference) {
		return nil, errprocess.Set(errprocess.KindInvalidReference, "Invalid YouTube URL or video ID")
	}

	// 2. 產生工作，檔名用全新的 UUID，並行請求之間不會撞檔名
	job := domain.Job{
		ID:        newJobID(),
		Reference: reference,
	}
	rawName = job.ID + domain.RawAudioExt
	job.RawPath = s.Repo.Path(rawName)

	// 外部工具可設定執行上限，超時會強制結束並走清理路徑
	toolCtx := ctx
	if s.Cfg.Tools.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		toolCtx, cancel = context.WithTimeout(ctx, time.Duration(s.Cfg.Tools.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	// 3. 下載音訊
	logger.Log.Info("收到抽取請求", zap.String("reference", reference), zap.String("jobID", job.ID))
	meta, err := downloadAudio(toolCtx, s.Cfg.Tools, reference, job.RawPath)
	if err != nil {
		return nil, err
	}

	// 4. 選擇性轉檔成語音辨識格式，成功後以 wav 發布並移除中介檔
	publishName := rawName
	if s.Cfg.Tools.TranscodeWAV {
		wavName = job.ID + domain.TranscodedExt
		job.WavPath = s.Repo.Path(wavName)
		if err = convertAudio(toolCtx, s.Cfg.Tools, job.RawPath, job.WavPath); err != nil {
			return nil, err
		}
		s.Repo.Remove(rawName)
		publishName = wavName
	}

	// 5. 發布：組公開網址與過期時間（過期時間僅供參考，實際以檔案 mtime 為準）
	audioURL := strings.TrimRight(s.Cfg.BaseURL, "/") + domain.PublicAudioPath + "/" + publishName
	expiration := time.Now().Add(time.Duration(s.Cfg.Storage.ExpirationMinutes) * time.Minute)

	logger.Log.Info("音訊抽取完成",
		zap.String("jobID", job.ID),
		zap.String("title", meta.Title),
		zap.String("file", publishName))

	return &domain.ExtractRes{
		Success:          true,
		Title:            meta.Title,
		AudioURL:         audioURL,
		Expiration:       expiration,
		ExpiresInMinutes: s.Cfg.Storage.ExpirationMinutes,
	}, nil
}
