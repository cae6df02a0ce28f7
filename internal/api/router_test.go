package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mealmate/internal/core/cache"
	"mealmate/internal/core/chat"
	"mealmate/internal/core/image"
	"mealmate/internal/core/ingredient"
	"mealmate/internal/core/inventory"
	"mealmate/internal/core/recipe"
	"mealmate/internal/core/scan"
	"mealmate/internal/core/shopping"
	"mealmate/internal/core/user"
	"mealmate/internal/infrastructure/config"
	"mealmate/internal/infrastructure/database"
	"mealmate/internal/infrastructure/metrics"
	"mealmate/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	lastIngredients []string
}

func (f *fakeSearcher) FindByIngredients(_ context.Context, ingredients []string, number int) ([]recipe.Recipe, error) {
	f.lastIngredients = ingredients
	return []recipe.Recipe{
		{ID: 1, Title: "Half", UsedIngredientCount: 1, MissedIngredientCount: 1},
		{ID: 2, Title: "Full", UsedIngredientCount: 2},
	}, nil
}

func (f *fakeSearcher) Information(_ context.Context, id int) (*recipe.Detail, error) {
	if id == 404 {
		return nil, common.ErrUpstreamUnavailable
	}
	return &recipe.Detail{Recipe: recipe.Recipe{ID: id, Title: "Detail"}, Instructions: "Cook."}, nil
}

func (f *fakeSearcher) ComplexSearch(_ context.Context, query string, filters recipe.Filters, number int) ([]recipe.Recipe, error) {
	return []recipe.Recipe{{ID: 9, Title: query}}, nil
}

type fakeLookup struct{}

func (fakeLookup) SearchIngredients(_ context.Context, query string, _ int) ([]ingredient.Result, error) {
	return []ingredient.Result{{ID: 1, Name: query, Image: query + ".jpg"}}, nil
}

func (fakeLookup) AutocompleteIngredients(context.Context, string, int) ([]ingredient.Result, error) {
	return nil, nil
}

type fakeProcessor struct{}

func (fakeProcessor) Process(data string) (*image.Processed, error) {
	return &image.Processed{Base64: data}, nil
}

type fakeIdentifier struct{}

func (fakeIdentifier) Identify(context.Context, string) ([]inventory.Item, error) {
	return []inventory.Item{{Name: "carrot", Category: inventory.CategoryProduce, Source: inventory.SourceScan, Confidence: 0.9}}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:         config.AppConfig{Version: "test"},
		Server:      config.ServerConfig{RequestTimeout: 5 * time.Second, MaxBodyBytes: 1 << 20},
		DedupWindow: time.Millisecond,
	}
}

func setupTestRouter(t *testing.T) (*gin.Engine, *fakeSearcher) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	common.InitNopLogger()

	db, err := database.Open(":memory:", "silent")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	searcher := &fakeSearcher{}
	m := metrics.New()
	inv := inventory.NewService(database.NewInventoryStore(db))
	users := user.NewService(database.NewUserStore(db), 1)
	details := cache.NewDetailCache(cache.DefaultDetailSize)

	svc := &Services{
		Recipes:     recipe.NewService(searcher, details),
		Ingredients: ingredient.NewService(fakeLookup{}),
		Inventory:   inv,
		Shopping:    shopping.NewService(database.NewShoppingStore(db)),
		Chat:        chat.NewService(database.NewConversationStore(db), inv),
		Scanner:     scan.NewService(fakeProcessor{}, fakeIdentifier{}, users, inv, nil, m),
		Users:       users,
		DetailCache: details,
		Metrics:     m,
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	r, err := SetupRouter(ctx, testConfig(), svc)
	require.NoError(t, err)
	return r, searcher
}

func call(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, body := call(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test", body["version"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, _ = call(t, r, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = call(t, r, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, common.ErrCodeNotFound, body["code"])

	w, body = call(t, r, http.MethodDelete, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, common.ErrCodeMethodNotAllowed, body["code"])
}

func TestRecipeMatchesUseInventoryByDefault(t *testing.T) {
	r, searcher := setupTestRouter(t)

	w, _ := call(t, r, http.MethodPost, "/api/v1/inventory/batch", `{"items":[{"name":"egg","category":"protein"},{"name":"leek"}]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := call(t, r, http.MethodGet, "/api/v1/recipes/matches", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"egg", "leek"}, searcher.lastIngredients)

	matches := body["recipes"].([]interface{})
	require.Len(t, matches, 2)
	first := matches[0].(map[string]interface{})
	assert.Equal(t, "Full", first["title"])
	assert.Equal(t, float64(100), first["matchPercentage"])
	assert.Equal(t, true, first["canMakeNow"])

	_, _ = call(t, r, http.MethodGet, "/api/v1/recipes/matches?ingredients=tomato,%20basil", "")
	assert.Equal(t, []string{"tomato", "basil"}, searcher.lastIngredients)
}

func TestRecipeDetailAndSearch(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, body := call(t, r, http.MethodGet, "/api/v1/recipes/12", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cook.", body["instructions"])

	w, body = call(t, r, http.MethodGet, "/api/v1/recipes/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, common.ErrCodeInvalidRequest, body["code"])

	w, body = call(t, r, http.MethodGet, "/api/v1/recipes/404", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Upstream service failed. Please try again.", body["error"])

	w, _ = call(t, r, http.MethodGet, "/api/v1/recipes/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = call(t, r, http.MethodGet, "/api/v1/recipes/search?query=curry&maxReadyTime=30&diet=vegan", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["recipes"], 1)
}

func TestAssistantChatFlow(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, body := call(t, r, http.MethodPost, "/api/v1/assistant/chat", `{"conversationId":"c1","message":"How do I cook chicken?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	answer := body["answer"].(map[string]interface{})
	assert.Equal(t, "chicken", answer["intent"])
	assert.Contains(t, answer["text"], "Chicken")

	w, _ = call(t, r, http.MethodPost, "/api/v1/assistant/chat", `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = call(t, r, http.MethodGet, "/api/v1/assistant/history/c1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["messages"], 2)

	w, body = call(t, r, http.MethodGet, "/api/v1/assistant/recipes/pasta", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["found"])

	w, body = call(t, r, http.MethodGet, "/api/v1/assistant/recipes/lasagna", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["found"])
}

func TestInventoryCRUD(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, body := call(t, r, http.MethodPost, "/api/v1/inventory", `{"name":"milk","category":"mystery"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "other", body["category"])
	id := body["id"].(string)

	w, body = call(t, r, http.MethodPut, "/api/v1/inventory/"+id, `{"category":"dairy","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dairy", body["category"])

	w, _ = call(t, r, http.MethodPut, "/api/v1/inventory/"+id, `{"category":"mystery"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(t, r, http.MethodPut, "/api/v1/inventory/missing", `{"unit":"l"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = call(t, r, http.MethodPost, "/api/v1/inventory", `{"category":"dairy"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(t, r, http.MethodDelete, "/api/v1/inventory/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, body = call(t, r, http.MethodGet, "/api/v1/inventory", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["items"])
}

func TestShoppingList(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, body := call(t, r, http.MethodPost, "/api/v1/shopping/batch",
		`{"items":[{"ingredientName":"flour","quantity":1,"unit":"kg"},{"ingredientName":"sugar","quantity":2,"unit":"cups"}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	first := body["items"].([]interface{})[0].(map[string]interface{})

	w, body = call(t, r, http.MethodPatch, "/api/v1/shopping/"+first["id"].(string)+"/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["purchased"])

	w, body = call(t, r, http.MethodDelete, "/api/v1/shopping/purchased", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["deleted"])

	w, body = call(t, r, http.MethodDelete, "/api/v1/shopping", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["deleted"])
}

func TestIngredientRoutes(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, body := call(t, r, http.MethodGet, "/api/v1/ingredients/autocomplete?query=to", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := body["ingredients"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "https://spoonacular.com/cdn/ingredients_100x100/to.jpg", list[0].(map[string]interface{})["image"])

	w, body = call(t, r, http.MethodGet, "/api/v1/ingredients/category/dairy", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["ingredients"], 10)

	w, _ = call(t, r, http.MethodGet, "/api/v1/ingredients/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScanAndQuota(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, body := call(t, r, http.MethodPost, "/api/v1/scan", `{"image":"QUJD"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["ingredients"], 1)
	assert.Equal(t, float64(0), body["scansRemaining"])

	w, body = call(t, r, http.MethodPost, "/api/v1/scan", `{"image":"QUJDRA=="}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, common.ErrCodeQuotaExceeded, body["code"])

	w, body = call(t, r, http.MethodPost, "/api/v1/user/reset-quota", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["scansRemaining"])

	w, body = call(t, r, http.MethodPost, "/api/v1/user/upgrade", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "premium", body["tier"])
	assert.Equal(t, float64(-1), body["scansRemaining"])

	w, _ = call(t, r, http.MethodPost, "/api/v1/scan", `{"image":"QUJDREU="}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = call(t, r, http.MethodPost, "/api/v1/user/onboarding", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["onboardingCompleted"])
}
