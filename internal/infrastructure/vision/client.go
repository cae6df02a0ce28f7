// Package vision identifies ingredients in a photo through an OpenAI compatible chat completions API.
package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mealmate/internal/core/inventory"
	"mealmate/internal/infrastructure/config"
	"mealmate/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	serviceName       = "vision"
	endpoint          = "chat"
	defaultConfidence = 0.9

	identifyPrompt = `Identify all food ingredients in this image. Return ONLY a JSON array with objects containing: name (string), confidence (0-1), category (produce/protein/dairy/grains/spices/condiments/beverages/other). Identify at least 10 items if present. Example: [{"name":"tomato","confidence":0.95,"category":"produce"}]`
)

// Observer 外部呼叫的觀察者（指標）
type Observer interface {
	UpstreamCall(service, endpoint string, duration time.Duration, err error)
}

// Client 食材辨識客戶端
type Client struct {
	client    *resty.Client
	model     string
	maxTokens int
	observer  Observer
	now       func() time.Time
}

// NewClient 創建辨識客戶端
func NewClient(cfg config.VisionConfig, observer Observer) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		client:    client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		observer:  observer,
		now:       time.Now,
	}
}

type identified struct {
	Name       string   `json:"name"`
	Confidence *float64 `json:"confidence"`
	Category   string   `json:"category"`
}

// Identify 辨識圖片中的食材，image 為已處理過的 JPEG base64（可含 data URI 前綴）
func (c *Client) Identify(ctx context.Context, image string) (items []inventory.Item, err error) {
	start := time.Now()
	defer func() {
		d := time.Since(start)
		common.LogUpstreamCall(serviceName, endpoint, d, err)
		if c.observer != nil {
			c.observer.UpstreamCall(serviceName, endpoint, d, err)
		}
	}()

	url := image
	if !strings.HasPrefix(image, "data:image/") {
		url = "data:image/jpeg;base64," + image
	}

	req := common.ChatRequest{
		Model: c.model,
		Messages: []common.Message{{
			Role:    "user",
			Content: []common.Content{common.TextContent(identifyPrompt), common.ImageContent(url)},
		}},
		MaxTokens: c.maxTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return nil, common.ErrUpstreamUnavailable.Wrap(fmt.Errorf("failed to send vision request: %w", err))
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("Vision API returned error", zap.Int("status", resp.StatusCode()))
		return nil, common.ErrUpstreamUnavailable.Wrap(fmt.Errorf("vision API returned status %d", resp.StatusCode()))
	}

	var result common.ChatResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, common.ErrUpstreamUnavailable.Wrap(fmt.Errorf("failed to parse vision response: %w", err))
	}
	if len(result.Choices) == 0 {
		return nil, common.ErrUpstreamUnavailable.Wrap(fmt.Errorf("no choices in vision response"))
	}

	return c.parseItems(result.Choices[0].Message.Content)
}

// parseItems 取出回覆中的 JSON 陣列並轉成庫存項目；沒有陣列時回傳空清單
func (c *Client) parseItems(content string) ([]inventory.Item, error) {
	raw, ok := common.ExtractJSONArray(content)
	if !ok {
		common.LogWarn("Vision reply contained no JSON array")
		return []inventory.Item{}, nil
	}

	var found []identified
	if err := common.ParseJSON(raw, &found); err != nil {
		if err := common.ParseJSON(common.QuoteJSONKeys(raw), &found); err != nil {
			return nil, common.ErrUpstreamUnavailable.Wrap(fmt.Errorf("failed to parse identified ingredients: %w", err))
		}
	}

	now := c.now()
	items := make([]inventory.Item, 0, len(found))
	for i, f := range found {
		if strings.TrimSpace(f.Name) == "" {
			continue
		}
		confidence := defaultConfidence
		if f.Confidence != nil && *f.Confidence > 0 {
			confidence = *f.Confidence
		}
		items = append(items, inventory.Item{
			ID:         fmt.Sprintf("ingredient-%d-%d", now.UnixMilli(), i),
			Name:       f.Name,
			Category:   inventory.ParseCategory(f.Category),
			AddedDate:  now,
			Source:     inventory.SourceScan,
			Confidence: confidence,
		})
	}
	return items, nil
}
