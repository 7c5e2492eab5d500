package errprocess

import (
	"errors"
	"net/http"

	"audio_extract_service/pkg/logger"
)

// Kind 錯誤分類，對應 HTTP 回應狀態
type Kind string

const (
	// KindInvalidReference 輸入的 URL / 影片 ID 不合法，使用者可自行修正
	KindInvalidReference Kind = "invalid_reference"
	// KindFetch 外部下載工具失敗或輸出遺失
	KindFetch Kind = "fetch_failure"
	// KindTranscode 外部轉檔工具失敗或輸出遺失
	KindTranscode Kind = "transcode_failure"
	// KindInternal 未預期的錯誤，只回傳通用訊息
	KindInternal Kind = "internal_error"
)

// Error 帶分類的錯誤，Msg 是可以直接回給使用者的文字
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Set set err info
func Set(kind Kind, errMsg string) error {
	logger.Log.Error(errMsg)
	return &Error{Kind: kind, Msg: errMsg}
}

// KindOf 取得錯誤分類，無法辨識時一律視為 internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// StatusOf 依錯誤分類對應 HTTP status code
func StatusOf(err error) int {
	if KindOf(err) == KindInvalidReference {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
