package recipe

// Ingredient 食譜使用或缺少的食材
type Ingredient struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Image    string  `json:"image"`
	Original string  `json:"original,omitempty"`
}

// Recipe 食譜搜尋結果（findByIngredients / complexSearch）
type Recipe struct {
	ID                    int          `json:"id"`
	Title                 string       `json:"title"`
	Image                 string       `json:"image"`
	ImageType             string       `json:"imageType"`
	UsedIngredientCount   int          `json:"usedIngredientCount"`
	MissedIngredientCount int          `json:"missedIngredientCount"`
	UsedIngredients       []Ingredient `json:"usedIngredients"`
	MissedIngredients     []Ingredient `json:"missedIngredients"`
	Likes                 int          `json:"likes"`
	ReadyInMinutes        int          `json:"readyInMinutes,omitempty"`
	Servings              int          `json:"servings,omitempty"`
}

// Match 附上配對結果的食譜
type Match struct {
	Recipe
	MatchPercentage int  `json:"matchPercentage"`
	CanMakeNow      bool `json:"canMakeNow"`
}

// Detail 食譜詳細資訊
type Detail struct {
	Recipe
	Instructions         string                `json:"instructions"`
	AnalyzedInstructions []AnalyzedInstruction `json:"analyzedInstructions"`
	ExtendedIngredients  []ExtendedIngredient  `json:"extendedIngredients"`
	Summary              string                `json:"summary"`
	Cuisines             []string              `json:"cuisines"`
	DishTypes            []string              `json:"dishTypes"`
	Diets                []string              `json:"diets"`
	SourceURL            string                `json:"sourceUrl,omitempty"`
}

// ExtendedIngredient 詳細資訊中的食材
type ExtendedIngredient struct {
	Ingredient
	OriginalName string   `json:"originalName"`
	Meta         []string `json:"meta"`
}

// AnalyzedInstruction 分段的烹飪步驟
type AnalyzedInstruction struct {
	Name  string            `json:"name"`
	Steps []InstructionStep `json:"steps"`
}

// InstructionStep 單一步驟
type InstructionStep struct {
	Number      int         `json:"number"`
	Step        string      `json:"step"`
	Ingredients []StepThing `json:"ingredients"`
	Equipment   []StepThing `json:"equipment"`
}

// StepThing 步驟中提到的食材或器具
type StepThing struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Filters 食譜搜尋條件
type Filters struct {
	MaxReadyTime int      `json:"maxReadyTime,omitempty" form:"maxReadyTime" binding:"omitempty,min=1"`
	Cuisine      string   `json:"cuisine,omitempty" form:"cuisine"`
	Diet         []string `json:"diet,omitempty" form:"diet"`
}
