package ingredient

import (
	"context"
	"sort"
	"strings"

	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	imageBaseURL      = "https://spoonacular.com/cdn/ingredients_100x100/"
	searchCount       = 20
	autocompleteCount = 10
	categoryQueries   = 10
	categoryFanOut    = 4
	defaultCategory   = "other"
)

// Result 食材搜尋結果
type Result struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// Lookup 外部食材搜尋服務
type Lookup interface {
	SearchIngredients(ctx context.Context, query string, number int) ([]Result, error)
	AutocompleteIngredients(ctx context.Context, query string, number int) ([]Result, error)
}

// 分類對應的代表性查詢字
var categoryTable = map[string][]string{
	"vegetables": {"tomato", "onion", "carrot", "broccoli", "spinach", "lettuce", "potato", "bell pepper", "cucumber", "zucchini", "eggplant", "cauliflower", "cabbage", "celery", "asparagus", "green beans", "peas", "corn", "mushroom", "garlic"},
	"fruits":     {"apple", "banana", "orange", "strawberry", "blueberry", "raspberry", "mango", "pineapple", "watermelon", "grapes", "lemon", "lime", "peach", "pear", "plum", "cherry", "kiwi", "papaya", "avocado", "coconut"},
	"meat":       {"chicken breast", "ground beef", "pork chops", "bacon", "sausage", "ham", "turkey", "lamb", "steak", "chicken thighs", "ground turkey", "pork tenderloin", "beef ribs", "chicken wings", "duck"},
	"seafood":    {"salmon", "tuna", "shrimp", "cod", "tilapia", "crab", "lobster", "scallops", "mussels", "clams", "sardines", "anchovies", "halibut", "trout", "catfish"},
	"dairy":      {"milk", "cheese", "butter", "yogurt", "cream", "sour cream", "cream cheese", "mozzarella", "cheddar", "parmesan", "feta", "ricotta", "cottage cheese", "goat cheese", "blue cheese"},
	"grains":     {"rice", "pasta", "bread", "flour", "oats", "quinoa", "couscous", "barley", "bulgur", "cornmeal", "noodles", "tortillas", "pita bread", "bagels", "croissants"},
	"spices":     {"salt", "pepper", "garlic powder", "onion powder", "paprika", "cumin", "coriander", "turmeric", "cinnamon", "nutmeg", "ginger", "oregano", "basil", "thyme", "rosemary", "curry powder", "chili powder", "cayenne"},
	"sauces":     {"soy sauce", "tomato sauce", "hot sauce", "worcestershire sauce", "fish sauce", "oyster sauce", "teriyaki sauce", "bbq sauce", "ketchup", "mustard", "mayonnaise", "ranch dressing", "vinegar", "olive oil", "sesame oil"},
	"indian":     {"garam masala", "turmeric", "cumin seeds", "coriander powder", "cardamom", "cloves", "bay leaves", "fenugreek", "mustard seeds", "curry leaves", "paneer", "ghee", "basmati rice", "lentils", "chickpeas"},
	"chinese":    {"soy sauce", "rice vinegar", "sesame oil", "ginger", "garlic", "scallions", "bok choy", "chinese cabbage", "shiitake mushrooms", "rice noodles", "hoisin sauce", "oyster sauce", "five spice", "star anise"},
	"italian":    {"pasta", "tomato sauce", "mozzarella", "parmesan", "basil", "oregano", "olive oil", "balsamic vinegar", "prosciutto", "pancetta", "risotto rice", "pesto", "marinara", "ricotta"},
	"japanese":   {"soy sauce", "mirin", "sake", "miso paste", "nori", "wasabi", "ginger", "rice vinegar", "sesame seeds", "tofu", "edamame", "udon noodles", "soba noodles", "dashi"},
	"mexican":    {"tortillas", "black beans", "corn", "cilantro", "lime", "jalapeño", "avocado", "tomatoes", "onions", "cumin", "chili powder", "salsa", "queso fresco", "sour cream"},
	"desserts":   {"chocolate", "vanilla extract", "sugar", "brown sugar", "honey", "maple syrup", "cocoa powder", "chocolate chips", "condensed milk", "whipped cream", "ice cream", "gelatin", "sprinkles"},
}

// CategoryNames 支援的分類名稱
func CategoryNames() []string {
	names := make([]string, 0, len(categoryTable))
	for name := range categoryTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Service 食材搜尋服務，任何上游錯誤都回傳空結果
type Service struct {
	lookup Lookup
}

// NewService 創建食材搜尋服務
func NewService(lookup Lookup) *Service {
	return &Service{lookup: lookup}
}

// Search 搜尋食材
func (s *Service) Search(ctx context.Context, query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Result{}
	}

	results, err := s.lookup.SearchIngredients(ctx, query, searchCount)
	if err != nil {
		common.LogWarn("食材搜尋失敗", zap.String("query", query), zap.Error(err))
		return []Result{}
	}
	return normalize(results)
}

// Autocomplete 自動完成，沒有結果或失敗時改用一般搜尋
func (s *Service) Autocomplete(ctx context.Context, query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Result{}
	}

	results, err := s.lookup.AutocompleteIngredients(ctx, query, autocompleteCount)
	if err != nil {
		common.LogWarn("食材自動完成失敗，改用搜尋", zap.String("query", query), zap.Error(err))
		return s.Search(ctx, query)
	}
	if len(results) == 0 {
		return s.Search(ctx, query)
	}
	return normalize(results)
}

// ByCategory 取分類前 10 個查詢字各自的第一筆結果，順序與查詢字相同
func (s *Service) ByCategory(ctx context.Context, category string) []Result {
	queries := categoryTable[strings.ToLower(strings.TrimSpace(category))]
	if len(queries) > categoryQueries {
		queries = queries[:categoryQueries]
	}
	if len(queries) == 0 {
		return []Result{}
	}

	firsts := make([]*Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(categoryFanOut)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if hits := s.Search(gctx, q); len(hits) > 0 {
				firsts[i] = &hits[0]
			}
			return nil
		})
	}
	_ = g.Wait()

	results := make([]Result, 0, len(firsts))
	for _, r := range firsts {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}

func normalize(results []Result) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		if r.Image != "" && !strings.HasPrefix(r.Image, "http") {
			r.Image = imageBaseURL + r.Image
		}
		r.Category = defaultCategory
		out[i] = r
	}
	return out
}
