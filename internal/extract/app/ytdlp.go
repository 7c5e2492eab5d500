package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"audio_extract_service/internal/extract/domain"
	"audio_extract_service/pkg/config"
	errprocess "audio_extract_service/pkg/err"
	"audio_extract_service/pkg/logger"

	"go.uber.org/zap"
)

// 讓 adapter test mock使用包裝函數，外部工具一律經過這裡執行
var runTool = func(ctx context.Context, bin string, args ...string) (stdout, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// DownloadAudio 以 yt-dlp 下載影片的音訊到 destPath，回傳影片描述資訊
// 失敗時保證 destPath 與其 .mp3 變體都不會留在磁碟上
func DownloadAudio(ctx context.Context, tools config.ToolConfig, reference, destPath string) (*domain.Metadata, error) {
	// bare 影片 ID 先補成完整網址
	processedURL := domain.CanonicalURL(reference)

	// 去掉 .mp3 副檔名當輸出模板，避免 yt-dlp 再疊一層副檔名
	basePath := strings.TrimSuffix(destPath, domain.RawAudioExt)

	args := []string{
		"--format", "bestaudio/best",
		"--no-playlist",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", tools.AudioQuality,
		"--output", basePath,
		"--print-json",
		"--no-progress",
	}
	// cookie 檔屬於部署環境設定，留空就不帶
	if tools.CookieFile != "" {
		args = append(args, "--cookies", tools.CookieFile)
	}
	args = append(args, processedURL)

	logger.Log.Info("開始下載 YouTube 音訊", zap.String("url", processedURL))

	stdout, stderr, err := runTool(ctx, tools.YTDLPPath, args...)
	if err != nil {
		// 工具輸出只進 log，不回給使用者
		logger.Log.Error("yt-dlp 執行失敗",
			zap.String("url", processedURL),
			zap.Error(err),
			zap.ByteString("stderr", stderr))
		removePartialDownload(destPath, basePath)
		return nil, errprocess.Set(errprocess.KindFetch, "Failed to download audio from YouTube")
	}

	meta := parseMetadata(stdout)

	// yt-dlp 可能把輸出寫成 <base>.mp3，與期望路徑不同時搬回來
	expectedPath := basePath + domain.RawAudioExt
	if expectedPath != destPath {
		if fileExists(expectedPath) && !fileExists(destPath) {
			logger.Log.Info("搬移輸出檔案到期望路徑",
				zap.String("from", expectedPath), zap.String("to", destPath))
			if err := os.Rename(expectedPath, destPath); err != nil {
				logger.Log.Error("搬移輸出檔案失敗", zap.Error(err))
				removePartialDownload(destPath, basePath)
				return nil, errprocess.Set(errprocess.KindFetch, "Failed to download audio from YouTube")
			}
		}
	}

	// 確認輸出存在且非空檔
	info, err := os.Stat(destPath)
	if err != nil {
		logger.Log.Error("找不到下載輸出檔案", zap.String("path", destPath))
		removePartialDownload(destPath, basePath)
		return nil, errprocess.Set(errprocess.KindFetch, "Failed to download audio from YouTube")
	}
	if info.Size() == 0 {
		logger.Log.Error("下載輸出是空檔", zap.String("path", destPath))
		removePartialDownload(destPath, basePath)
		return nil, errprocess.Set(errprocess.KindFetch, "Downloaded audio file is empty")
	}

	logger.Log.Info("下載完成",
		zap.String("path", destPath), zap.Int64("size", info.Size()))

	return meta, nil
}

// parseMetadata 解析 yt-dlp --print-json 輸出，缺欄位時補預設值
func parseMetadata(stdout []byte) *domain.Metadata {
	meta := new(domain.Metadata)

	// --print-json 一部影片輸出一行 JSON，取最後一個非空行
	lines := bytes.Split(bytes.TrimSpace(stdout), []byte("\n"))
	if len(lines) > 0 {
		if err := json.Unmarshal(lines[len(lines)-1], meta); err != nil {
			logger.Log.Warn("解析 yt-dlp metadata 失敗", zap.Error(err))
		}
	}

	if meta.Title == "" {
		meta.Title = "Unknown"
	}
	if meta.Uploader == "" {
		meta.Uploader = "Unknown"
	}
	return meta
}

// removePartialDownload 清掉期望路徑與 .mp3 變體的殘檔
func removePartialDownload(destPath, basePath string) {
	for _, p := range []string{destPath, basePath + domain.RawAudioExt} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.Log.Error("清理下載殘檔失敗", zap.String("path", p), zap.Error(err))
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
