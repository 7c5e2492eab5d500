package domain

import "time"

const (
	// RawAudioExt 下載工具產出的中介格式
	RawAudioExt = ".mp3"
	// TranscodedExt 轉檔後適合語音辨識的格式
	TranscodedExt = ".wav"

	// PublicAudioPath 發布音訊檔的靜態路徑前綴
	PublicAudioPath = "/static/audio"
)

// AudioExts 清理時認得的音訊副檔名
var AudioExts = []string{RawAudioExt, TranscodedExt}

// Metadata yt-dlp 回傳的影片描述資訊，只隨回應帶出，不落地
type Metadata struct {
	Title     string  `json:"title"`
	Duration  float64 `json:"duration"`
	Uploader  string  `json:"uploader"`
	Thumbnail string  `json:"thumbnail"`
}

// Job 單一請求的抽取工作，只存在於記憶體
type Job struct {
	ID        string // UUIDv4，同時是檔名
	Reference string // 使用者輸入的 URL 或影片 ID
	RawPath   string // 下載輸出路徑 <dir>/<id>.mp3
	WavPath   string // 轉檔輸出路徑 <dir>/<id>.wav
}

// ExtractRes usecase extract audio response
type ExtractRes struct {
	Success          bool
	Title            string
	AudioURL         string
	Expiration       time.Time
	ExpiresInMinutes int
}
