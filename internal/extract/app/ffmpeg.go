package app

import (
	"context"
	"os"

	"audio_extract_service/pkg/config"
	errprocess "audio_extract_service/pkg/err"
	"audio_extract_service/pkg/logger"

	"go.uber.org/zap"
)

// ConvertForTranscription 用 FFmpeg 將 srcPath 轉成 mono 16kHz 16-bit PCM WAV
// 語音辨識服務吃的固定格式；會覆寫已存在的 destPath
func ConvertForTranscription(ctx context.Context, tools config.ToolConfig, srcPath, destPath string) error {
	// 前置檢查：來源必須存在且非空檔，不通過就不執行外部工具
	info, err := os.Stat(srcPath)
	if err != nil {
		logger.Log.Error("找不到轉檔來源檔案", zap.String("path", srcPath))
		return errprocess.Set(errprocess.KindTranscode, "Audio conversion failed")
	}
	if info.Size() == 0 {
		logger.Log.Error("轉檔來源是空檔", zap.String("path", srcPath))
		return errprocess.Set(errprocess.KindTranscode, "Audio conversion failed")
	}

	cmdArgs := []string{
		"-i", srcPath,
		"-ac", "1", // Mono audio
		"-ar", "16000", // 16kHz sample rate
		"-acodec", "pcm_s16le", // 16-bit PCM
		"-y", // Overwrite output file if it exists
		destPath,
	}

	logger.Log.Info("開始轉檔", zap.String("src", srcPath), zap.String("dest", destPath))

	stdout, stderr, err := runTool(ctx, tools.FFmpegPath, cmdArgs...)
	// 完整工具輸出只進 log
	logger.Log.Debug("FFmpeg 輸出",
		zap.ByteString("stdout", stdout), zap.ByteString("stderr", stderr))
	if err != nil {
		logger.Log.Error("FFmpeg 執行失敗",
			zap.Error(err), zap.ByteString("stderr", stderr))
		return errprocess.Set(errprocess.KindTranscode, "Audio conversion failed")
	}

	// exit 0 不代表成功，輸出必須存在且非空檔
	outInfo, err := os.Stat(destPath)
	if err != nil {
		logger.Log.Error("FFmpeg 結束但輸出檔案遺失", zap.String("path", destPath))
		return errprocess.Set(errprocess.KindTranscode, "Audio conversion failed")
	}
	if outInfo.Size() == 0 {
		logger.Log.Error("FFmpeg 結束但輸出是空檔", zap.String("path", destPath))
		return errprocess.Set(errprocess.KindTranscode, "Audio conversion failed")
	}

	logger.Log.Info("轉檔完成",
		zap.String("path", destPath), zap.Int64("size", outInfo.Size()))
	return nil
}
