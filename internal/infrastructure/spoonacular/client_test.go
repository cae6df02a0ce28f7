package spoonacular

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mealmate/internal/core/recipe"
	"mealmate/internal/infrastructure/config"
	"mealmate/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	calls []string
	errs  int
}

func (o *recordingObserver) UpstreamCall(service, endpoint string, _ time.Duration, err error) {
	o.calls = append(o.calls, service+"/"+endpoint)
	if err != nil {
		o.errs++
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingObserver) {
	t.Helper()
	common.InitNopLogger()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	obs := &recordingObserver{}
	return NewClient(config.SpoonacularConfig{BaseURL: srv.URL, APIKey: "test-key", Timeout: time.Second}, obs), obs
}

func TestFindByIngredients(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/findByIngredients", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "egg,leek", q.Get("ingredients"))
		assert.Equal(t, "5", q.Get("number"))
		assert.Equal(t, "1", q.Get("ranking"))
		assert.Equal(t, "true", q.Get("ignorePantry"))
		assert.Equal(t, "test-key", q.Get("apiKey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Leek Omelette","usedIngredientCount":2,"missedIngredientCount":1,
			"usedIngredients":[{"id":1123,"name":"egg"}],"missedIngredients":[{"id":2,"name":"butter"}],"likes":7}]`))
	})

	recipes, err := client.FindByIngredients(context.Background(), []string{"egg", "leek"}, 5)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Leek Omelette", recipes[0].Title)
	assert.Equal(t, 2, recipes[0].UsedIngredientCount)
	assert.Equal(t, "butter", recipes[0].MissedIngredients[0].Name)
	assert.Equal(t, []string{"spoonacular/findByIngredients"}, obs.calls)
}

func TestInformationAndComplexSearch(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipes/42/information":
			_, _ = w.Write([]byte(`{"id":42,"title":"Soup","readyInMinutes":30,"servings":4,"instructions":"Boil.","cuisines":["french"]}`))
		case "/recipes/complexSearch":
			q := r.URL.Query()
			assert.Equal(t, "soup", q.Get("query"))
			assert.Equal(t, "20", q.Get("maxReadyTime"))
			assert.Equal(t, "vegan,gluten free", q.Get("diet"))
			assert.Equal(t, "", q.Get("cuisine"))
			_, _ = w.Write([]byte(`{"results":[{"id":7,"title":"Miso Soup"}],"totalResults":1}`))
		default:
			http.NotFound(w, r)
		}
	})

	detail, err := client.Information(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Soup", detail.Title)
	assert.Equal(t, "Boil.", detail.Instructions)
	assert.Equal(t, []string{"french"}, detail.Cuisines)

	results, err := client.ComplexSearch(context.Background(), "soup",
		recipe.Filters{MaxReadyTime: 20, Diet: []string{"vegan", "gluten free"}}, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 7, results[0].ID)
}

func TestIngredientEndpoints(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("metaInformation"))
		switch r.URL.Path {
		case "/food/ingredients/search":
			_, _ = w.Write([]byte(`{"results":[{"id":9003,"name":"apple","image":"apple.jpg"}],"offset":0,"number":20}`))
		case "/food/ingredients/autocomplete":
			_, _ = w.Write([]byte(`[{"id":11529,"name":"tomato","image":"tomato.png"}]`))
		}
	})

	found, err := client.SearchIngredients(context.Background(), "apple", 20)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "apple.jpg", found[0].Image)

	completed, err := client.AutocompleteIngredients(context.Background(), "to", 10)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, 11529, completed[0].ID)
}

func TestUpstreamErrors(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/recipes/findByIngredients" {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"status":"failure","code":402}`))
			return
		}
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.FindByIngredients(context.Background(), []string{"egg"}, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpstreamUnavailable))

	_, err = client.Information(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpstreamUnavailable))
	assert.Equal(t, 2, obs.errs)
}
