// Package spoonacular is the REST client for recipe and ingredient search.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mealmate/internal/core/ingredient"
	"mealmate/internal/core/recipe"
	"mealmate/internal/infrastructure/config"
	"mealmate/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const serviceName = "spoonacular"

// Observer 外部呼叫的觀察者（指標）
type Observer interface {
	UpstreamCall(service, endpoint string, duration time.Duration, err error)
}

// Client Spoonacular API 客戶端
type Client struct {
	client   *resty.Client
	apiKey   string
	observer Observer
}

// NewClient 創建 Spoonacular 客戶端
func NewClient(cfg config.SpoonacularConfig, observer Observer) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if cfg.APIKey == "" {
		common.LogWarn("Spoonacular API key is not configured")
	}

	return &Client{
		client:   client,
		apiKey:   cfg.APIKey,
		observer: observer,
	}
}

// get 發送 GET 並解碼 JSON
func (c *Client) get(ctx context.Context, endpoint, path string, params map[string]string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		d := time.Since(start)
		common.LogUpstreamCall(serviceName, endpoint, d, err)
		if c.observer != nil {
			c.observer.UpstreamCall(serviceName, endpoint, d, err)
		}
	}()

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("apiKey", c.apiKey).
		Get(path)
	if err != nil {
		return common.ErrUpstreamUnavailable.Wrap(fmt.Errorf("%s request failed: %w", endpoint, err))
	}

	if resp.StatusCode() != http.StatusOK {
		body := resp.String()
		if len(body) > 200 {
			body = body[:200]
		}
		common.LogWarn("Spoonacular returned error",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode()),
			zap.String("body", body),
		)
		return common.ErrUpstreamUnavailable.Wrap(fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode()))
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return common.ErrUpstreamUnavailable.Wrap(fmt.Errorf("failed to parse %s response: %w", endpoint, err))
	}
	return nil
}

// FindByIngredients 依食材搜尋食譜
func (c *Client) FindByIngredients(ctx context.Context, ingredients []string, number int) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	err := c.get(ctx, "findByIngredients", "/recipes/findByIngredients", map[string]string{
		"ingredients":  strings.Join(ingredients, ","),
		"number":       strconv.Itoa(number),
		"ranking":      "1",
		"ignorePantry": "true",
	}, &recipes)
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Information 取得食譜詳細資訊
func (c *Client) Information(ctx context.Context, id int) (*recipe.Detail, error) {
	var detail recipe.Detail
	path := fmt.Sprintf("/recipes/%d/information", id)
	if err := c.get(ctx, "information", path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ComplexSearch 以關鍵字與條件搜尋食譜
func (c *Client) ComplexSearch(ctx context.Context, query string, filters recipe.Filters, number int) ([]recipe.Recipe, error) {
	params := map[string]string{
		"query":  query,
		"number": strconv.Itoa(number),
	}
	if filters.MaxReadyTime > 0 {
		params["maxReadyTime"] = strconv.Itoa(filters.MaxReadyTime)
	}
	if filters.Cuisine != "" {
		params["cuisine"] = filters.Cuisine
	}
	if len(filters.Diet) > 0 {
		params["diet"] = strings.Join(filters.Diet, ",")
	}

	var result struct {
		Results []recipe.Recipe `json:"results"`
	}
	if err := c.get(ctx, "complexSearch", "/recipes/complexSearch", params, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// SearchIngredients 搜尋食材
func (c *Client) SearchIngredients(ctx context.Context, query string, number int) ([]ingredient.Result, error) {
	var result struct {
		Results []ingredient.Result `json:"results"`
	}
	err := c.get(ctx, "ingredientSearch", "/food/ingredients/search", map[string]string{
		"query":           query,
		"number":          strconv.Itoa(number),
		"metaInformation": "true",
	}, &result)
	if err != nil {
		return nil, err
	}
	return result.Results, nil
}

// AutocompleteIngredients 食材自動完成
func (c *Client) AutocompleteIngredients(ctx context.Context, query string, number int) ([]ingredient.Result, error) {
	var results []ingredient.Result
	err := c.get(ctx, "ingredientAutocomplete", "/food/ingredients/autocomplete", map[string]string{
		"query":           query,
		"number":          strconv.Itoa(number),
		"metaInformation": "true",
	}, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}
