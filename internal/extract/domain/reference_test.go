package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"合法的影片 ID", "dQw4w9WgXcQ", true},
		{"ID 太短", "dQw4w9WgXc", false},
		{"ID 太長", "dQw4w9WgXcQQ", false},
		{"ID 含不合法字元", "not a url!!", false},
		{"含空白的字串", "not a url", false},
		{"長網址帶 v 參數", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"長網址缺 v 參數", "https://www.youtube.com/watch?x=1", false},
		{"不帶 www 的長網址", "https://youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"短網址帶路徑", "https://youtu.be/dQw4w9WgXcQ", true},
		{"短網址只有根路徑", "https://youtu.be/", false},
		{"短網址沒有路徑", "https://youtu.be", false},
		{"不支援的網域", "https://vimeo.com/12345", false},
		{"空字串", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidReference(tt.input))
		})
	}
}

func TestCanonicalURL(t *testing.T) {
	// bare 影片 ID 會補成完整網址
	assert.Equal(t,
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		CanonicalURL("dQw4w9WgXcQ"))

	// 已經是網址的輸入原樣通過
	assert.Equal(t,
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		CanonicalURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.Equal(t,
		"https://youtu.be/dQw4w9WgXcQ",
		CanonicalURL("https://youtu.be/dQw4w9WgXcQ"))
}
