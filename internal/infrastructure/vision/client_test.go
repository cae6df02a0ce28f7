package vision

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mealmate/internal/core/inventory"
	"mealmate/internal/infrastructure/config"
	"mealmate/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatReply(content string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return body
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	common.InitNopLogger()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.VisionConfig{BaseURL: srv.URL, APIKey: "sk-test", Model: "gpt-4o", MaxTokens: 1000}, nil)
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c
}

func TestIdentifyBuildsRequestAndItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req common.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		assert.Equal(t, 1000, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		require.Len(t, req.Messages[0].Content, 2)
		assert.Contains(t, req.Messages[0].Content[0].Text, "Identify at least 10 items")
		assert.Equal(t, "data:image/jpeg;base64,QUJD", req.Messages[0].Content[1].ImageURL.URL)

		_, _ = w.Write(chatReply("Here you go:\n```json\n" +
			`[{"name":"tomato","confidence":0.95,"category":"produce"},{"name":"milk","category":"Dairy"},{"name":"saffron","confidence":0.4,"category":"exotic"}]` +
			"\n```"))
	})

	items, err := client.Identify(context.Background(), "QUJD")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "ingredient-1700000000000-0", items[0].ID)
	assert.Equal(t, "ingredient-1700000000000-2", items[2].ID)
	assert.Equal(t, inventory.CategoryProduce, items[0].Category)
	assert.Equal(t, 0.95, items[0].Confidence)
	assert.Equal(t, inventory.CategoryDairy, items[1].Category)
	assert.Equal(t, 0.9, items[1].Confidence)
	assert.Equal(t, inventory.CategoryOther, items[2].Category)
	for _, item := range items {
		assert.Equal(t, inventory.SourceScan, item.Source)
	}
}

func TestIdentifyWithoutArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatReply("I could not see any food."))
	})

	items, err := client.Identify(context.Background(), "data:image/jpeg;base64,QUJD")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestIdentifyUnquotedKeys(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatReply(`[{name:"egg", confidence:0.8, category:"protein"}]`))
	})

	items, err := client.Identify(context.Background(), "QUJD")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "egg", items[0].Name)
}

func TestIdentifyUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Identify(context.Background(), "QUJD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpstreamUnavailable))
}
