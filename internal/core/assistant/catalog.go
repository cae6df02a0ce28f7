package assistant

import (
	"fmt"
	"strings"
)

// CatalogRecipe 內建的簡易食譜
type CatalogRecipe struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Time         string   `json:"time"`
	Difficulty   string   `json:"difficulty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Tips         []string `json:"tips"`
}

// 查詢時依此順序比對，第一個名稱包含查詢字串的食譜勝出
var catalog = []CatalogRecipe{
	{
		Slug:       "scrambled-eggs",
		Name:       "Perfect Scrambled Eggs",
		Time:       "5 minutes",
		Difficulty: "Easy",
		Ingredients: []string{
			"2-3 eggs", "butter", "salt", "pepper", "milk (optional)",
		},
		Instructions: []string{
			"Beat eggs with a splash of milk, salt, and pepper",
			"Heat butter in a non-stick pan over medium-low heat",
			"Pour in eggs and let sit for 20 seconds",
			"Gently stir with a spatula, creating large curds",
			"Remove from heat when still slightly wet (they'll continue cooking)",
			"Serve immediately",
		},
		Tips: []string{
			"Low heat is key for creamy eggs",
			"Don't overcook - remove when slightly wet",
			"Add cheese or herbs for variety",
		},
	},
	{
		Slug:       "avocado-toast",
		Name:       "Avocado Toast",
		Time:       "5 minutes",
		Difficulty: "Easy",
		Ingredients: []string{
			"bread", "avocado", "lemon juice", "salt", "pepper", "red pepper flakes",
		},
		Instructions: []string{
			"Toast bread until golden brown",
			"Mash avocado with lemon juice, salt, and pepper",
			"Spread avocado on toast",
			"Top with red pepper flakes, olive oil, or a fried egg",
		},
		Tips: []string{
			"Use ripe avocado for best texture",
			"Add tomatoes or feta for extra flavor",
		},
	},
	{
		Slug:       "pasta-aglio-olio",
		Name:       "Pasta Aglio e Olio",
		Time:       "15 minutes",
		Difficulty: "Easy",
		Ingredients: []string{
			"spaghetti", "garlic", "olive oil", "red pepper flakes", "parsley", "parmesan",
		},
		Instructions: []string{
			"Cook pasta in salted boiling water until al dente",
			"Meanwhile, sauté sliced garlic in olive oil until golden",
			"Add red pepper flakes and pasta water",
			"Toss cooked pasta in the garlic oil",
			"Add parsley and parmesan, serve hot",
		},
		Tips: []string{
			"Don't burn the garlic!",
			"Save pasta water for sauce",
			"Simple but delicious",
		},
	},
	{
		Slug:       "stir-fry",
		Name:       "Quick Vegetable Stir-Fry",
		Time:       "15 minutes",
		Difficulty: "Easy",
		Ingredients: []string{
			"mixed vegetables", "soy sauce", "garlic", "ginger", "oil", "rice or noodles",
		},
		Instructions: []string{
			"Heat oil in a wok or large pan over high heat",
			"Add garlic and ginger, stir for 30 seconds",
			"Add vegetables, stir-fry for 3-5 minutes",
			"Add soy sauce and other seasonings",
			"Serve over rice or noodles",
		},
		Tips: []string{
			"High heat is essential",
			"Cut vegetables uniformly",
			"Don't overcrowd the pan",
		},
	},
	{
		Slug:       "grilled-cheese",
		Name:       "Perfect Grilled Cheese",
		Time:       "10 minutes",
		Difficulty: "Easy",
		Ingredients: []string{
			"bread", "cheese", "butter",
		},
		Instructions: []string{
			"Butter one side of each bread slice",
			"Place cheese between bread (butter side out)",
			"Cook in pan over medium heat until golden",
			"Flip and cook other side until cheese melts",
		},
		Tips: []string{
			"Medium heat prevents burning",
			"Cover pan to melt cheese faster",
			"Try different cheese combinations",
		},
	},
	{
		Slug:       "chicken-breast",
		Name:       "Pan-Seared Chicken Breast",
		Time:       "20 minutes",
		Difficulty: "Medium",
		Ingredients: []string{
			"chicken breast", "salt", "pepper", "oil", "butter", "garlic",
		},
		Instructions: []string{
			"Pat chicken dry and season with salt and pepper",
			"Heat oil in pan over medium-high heat",
			"Sear chicken 6-7 minutes per side until golden",
			"Add butter and garlic, baste chicken",
			"Rest 5 minutes before slicing",
		},
		Tips: []string{
			"Don't move chicken while searing",
			"Use meat thermometer (165°F)",
			"Resting keeps it juicy",
		},
	},
}

// FindRecipe 以名稱做不分大小寫的子字串比對，回傳的食譜不與內建資料共用切片
func FindRecipe(name string) (CatalogRecipe, bool) {
	query := strings.ToLower(name)
	for _, r := range catalog {
		if strings.Contains(strings.ToLower(r.Name), query) {
			return r.clone(), true
		}
	}
	return CatalogRecipe{}, false
}

func (r CatalogRecipe) clone() CatalogRecipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	r.Instructions = append([]string(nil), r.Instructions...)
	r.Tips = append([]string(nil), r.Tips...)
	return r
}

// GetRecipeDetails 回傳格式化的食譜內容，找不到時回傳固定提示
func GetRecipeDetails(name string) string {
	r, ok := FindRecipe(name)
	if !ok {
		return recipeNotFound
	}
	return r.Render()
}

// Render 格式化食譜
func (r CatalogRecipe) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍳 **%s**\n", r.Name)
	fmt.Fprintf(&b, "⏱️ Time: %s | 📊 Difficulty: %s\n\n", r.Time, r.Difficulty)

	b.WriteString("**Ingredients:**\n")
	for _, ing := range r.Ingredients {
		b.WriteString("- " + ing + "\n")
	}

	b.WriteString("\n**Instructions:**\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	b.WriteString("\n**Pro Tips:**\n")
	for i, tip := range r.Tips {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("💡 " + tip)
	}
	return b.String()
}
