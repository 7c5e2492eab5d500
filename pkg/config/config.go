package config

// Extract definition audio_service YAML structure
type Extract struct {
	Port string `mapstructure:"port"`
	IP   string `mapstructure:"ip"`

	// BaseURL 對外公開的服務位址，組合 audio_url 用
	BaseURL string `mapstructure:"base_url"`
	// SessionSecret 保留給外層 session 簽章，核心流程不使用
	SessionSecret string `mapstructure:"session_secret"`

	Storage StorageConfig `mapstructure:"storage"`
	Tools   ToolConfig    `mapstructure:"tools"`
}

// StorageConfig definition artifact storage setting
type StorageConfig struct {
	// Dir 音訊檔案的存放目錄（扁平目錄，檔名為 <uuid>.<ext>）
	Dir string `mapstructure:"dir"`
	// ExpirationMinutes 檔案存活時間（分鐘）
	ExpirationMinutes int `mapstructure:"expiration_minutes"`
	// CleanupIntervalMinutes 背景清理的執行間隔（分鐘）
	CleanupIntervalMinutes int `mapstructure:"cleanup_interval_minutes"`
}

// ToolConfig definition external tool setting
type ToolConfig struct {
	YTDLPPath  string `mapstructure:"ytdlp_path"`
	FFmpegPath string `mapstructure:"ffmpeg_path"`

	// AudioQuality yt-dlp 抽出音訊的品質，預設 192K
	AudioQuality string `mapstructure:"audio_quality"`
	// CookieFile 部署環境專屬的 cookie 檔，留空代表不帶 cookie
	CookieFile string `mapstructure:"cookie_file"`
	// TimeoutSeconds 外部工具的執行上限，0 代表不限制
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// TranscodeWAV 是否轉成 mono 16kHz PCM WAV 再發布
	TranscodeWAV bool `mapstructure:"transcode_wav"`
}

// Defaults 補上未設定的欄位
func (c *Extract) Defaults() {
	if c.Storage.ExpirationMinutes <= 0 {
		c.Storage.ExpirationMinutes = 60
	}
	if c.Storage.CleanupIntervalMinutes <= 0 {
		c.Storage.CleanupIntervalMinutes = 15
	}
	if c.Tools.YTDLPPath == "" {
		c.Tools.YTDLPPath = "yt-dlp"
	}
	if c.Tools.FFmpegPath == "" {
		c.Tools.FFmpegPath = "ffmpeg"
	}
	if c.Tools.AudioQuality == "" {
		c.Tools.AudioQuality = "192K"
	}
}
