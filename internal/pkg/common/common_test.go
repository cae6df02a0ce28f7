package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray(t *testing.T) {
	raw := "Here you go:\n```json\n[{\"name\":\"tomato\"},{\"name\":\"onion\"}]\n```"

	got, ok := ExtractJSONArray(raw)
	require.True(t, ok)

	var items []map[string]string
	require.NoError(t, ParseJSON(got, &items))
	assert.Len(t, items, 2)
	assert.Equal(t, "onion", items[1]["name"])

	_, ok = ExtractJSONArray("no array here")
	assert.False(t, ok)
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var v map[string]int
	assert.Error(t, ParseJSON(`{"a":1} {"b":2}`, &v))
	assert.NoError(t, ParseJSON(`{"a":1}`, &v))
}

func TestQuoteJSONKeys(t *testing.T) {
	assert.Equal(t, `{"name": "egg", "qty": 2}`, QuoteJSONKeys(`{name: "egg", qty: 2}`))
}

func TestStatusOf(t *testing.T) {
	wrapped := fmt.Errorf("scan: %w", ErrQuotaExceeded)
	status, code := StatusOf(wrapped)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, ErrCodeQuotaExceeded, code)

	status, code = StatusOf(NewValidationError("text is required"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrCodeInvalidRequest, code)

	status, code = StatusOf(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ErrCodeInternalError, code)
	assert.Equal(t, ErrInternalError.Message, PublicMessage(errors.New("boom")))
}

func TestCustomErrorWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrUpstreamUnavailable.Wrap(cause)

	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
	assert.Equal(t, "info", ParseLevel("verbose").String())
	assert.Equal(t, "error", ParseLevel("error").String())
}

func TestDecodeJSONIgnoresUnknownFields(t *testing.T) {
	var v struct {
		ID int `json:"id"`
	}
	require.NoError(t, DecodeJSON(strings.NewReader(`{"id":7,"unusedIngredients":[]}`), &v))
	assert.Equal(t, 7, v.ID)
}

func TestConciseModeKeepsLifecycleLines(t *testing.T) {
	prev := LogMode
	t.Cleanup(func() { LogMode = prev })

	LogMode = "concise"
	assert.True(t, keepInfo("請求完成"))
	assert.True(t, keepInfo("Starting mealmate"))
	assert.True(t, keepInfo("Server exited"))
	assert.False(t, keepInfo("已加入庫存"))

	LogMode = ""
	assert.True(t, keepInfo("已加入庫存"))
}
