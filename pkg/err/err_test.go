package errprocess

import (
	"errors"
	"net/http"
	"testing"

	"audio_extract_service/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	logger.SetNewNop()

	err := Set(KindFetch, "Failed to download audio from YouTube")

	assert.Error(t, err)
	assert.Equal(t, "Failed to download audio from YouTube", err.Error())
	assert.Equal(t, KindFetch, KindOf(err))
}

func TestKindOf(t *testing.T) {
	logger.SetNewNop()

	assert.Equal(t, KindInvalidReference, KindOf(Set(KindInvalidReference, "No URL provided")))
	assert.Equal(t, KindTranscode, KindOf(Set(KindTranscode, "Audio conversion failed")))

	// 未分類的錯誤一律視為 internal
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestStatusOf(t *testing.T) {
	logger.SetNewNop()

	assert.Equal(t, http.StatusBadRequest, StatusOf(Set(KindInvalidReference, "Invalid YouTube URL or video ID")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Set(KindFetch, "Failed to download audio from YouTube")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}
