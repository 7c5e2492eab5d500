package domain

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// CanonicalWatchURL 長網址格式，bare ID 會被補成這個形式
	CanonicalWatchURL = "https://www.youtube.com/watch?v="
)

// videoIDPattern YouTube 影片 ID 固定 11 碼
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// IsValidReference 驗證輸入是合法的 YouTube URL 或影片 ID
func IsValidReference(input string) bool {
	parsed, err := url.Parse(input)
	if err != nil {
		return false
	}

	// 沒有 host 視為 bare 影片 ID
	if parsed.Host == "" {
		return videoIDPattern.MatchString(input)
	}

	switch parsed.Host {
	case "youtube.com", "www.youtube.com":
		// 長網址必須帶 v 參數
		return parsed.Query().Has("v")
	case "youtu.be":
		// 短網址必須有路徑
		return parsed.Path != "" && parsed.Path != "/"
	}

	return false
}

// CanonicalURL 將 bare 影片 ID 補成完整網址，URL 原樣通過
func CanonicalURL(ref string) string {
	if strings.Contains(ref, "youtube.com") || strings.Contains(ref, "youtu.be") {
		return ref
	}
	return CanonicalWatchURL + ref
}
