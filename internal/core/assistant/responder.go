// Package assistant provides the offline, rule-based cooking assistant.
package assistant

import (
	"strings"
)

// Intent 回覆分類
type Intent string

// 依比對優先順序排列
const (
	IntentChicken      Intent = "chicken"
	IntentPasta        Intent = "pasta"
	IntentEgg          Intent = "egg"
	IntentSteak        Intent = "steak"
	IntentRice         Intent = "rice"
	IntentVegetable    Intent = "vegetable"
	IntentSauce        Intent = "sauce"
	IntentOven         Intent = "oven"
	IntentSeasoning    Intent = "seasoning"
	IntentQuick        Intent = "quick"
	IntentHealthy      Intent = "healthy"
	IntentWhatCanICook Intent = "what_can_i_cook"
	IntentTechnique    Intent = "technique"
	IntentSubstitution Intent = "substitution"
	IntentAppHelp      Intent = "app_help"
	IntentMealPlanning Intent = "meal_planning"
	IntentDefault      Intent = "default"
)

// repeatPrefixLen 判斷重複提問時取用的訊息前綴長度（字元數）
const repeatPrefixLen = 20

// maxInventoryNames 建議模板中最多列出的庫存食材數
const maxInventoryNames = 5

// Request 助理輸入
type Request struct {
	Message   string   `json:"message"`
	Inventory []string `json:"inventory,omitempty"`
	History   []string `json:"history,omitempty"`
}

// Reply 助理回覆
type Reply struct {
	Intent Intent `json:"intent"`
	Text   string `json:"text"`
}

// turn 單次比對所需的資訊
type turn struct {
	message   string
	inventory []string
	history   []string
}

type rule struct {
	intent  Intent
	match   func(t *turn) bool
	respond func(t *turn) string
}

func containsAny(keywords ...string) func(t *turn) bool {
	return func(t *turn) bool {
		for _, k := range keywords {
			if strings.Contains(t.message, k) {
				return true
			}
		}
		return false
	}
}

func static(text string) func(t *turn) string {
	return func(*turn) string { return text }
}

// rules 依序比對，第一個符合的規則勝出
var rules = []rule{
	{IntentChicken, containsAny("chicken", "poultry"), static(chickenGuide)},
	{IntentPasta, containsAny("pasta", "spaghetti", "noodle"), static(pastaGuide)},
	{IntentEgg, containsAny("egg", "omelette", "scramble"), static(eggGuide)},
	{IntentSteak, containsAny("steak", "beef"), static(steakGuide)},
	{IntentRice, containsAny("rice", "grain"), static(riceGuide)},
	{IntentVegetable, containsAny("vegetable", "veggie"), static(vegetableGuide)},
	{IntentSauce, containsAny("sauce", "gravy"), static(sauceGuide)},
	{IntentOven, containsAny("bake", "oven", "roast"), static(ovenGuide)},
	{IntentSeasoning, containsAny("spice", "season", "flavor"), static(seasoningGuide)},
	{IntentQuick, containsAny("quick", "15", "fast", "easy"), quickReply},
	{IntentHealthy, containsAny("healthy", "diet", "nutrition", "low calorie"), static(healthyIdeas)},
	{IntentWhatCanICook, containsAny("what can i cook", "what can i make", "suggestions"), inventoryReply},
	{IntentTechnique, containsAny("how to", "technique", "method"), static(techniqueGuide)},
	{IntentSubstitution, containsAny("substitute", "replace", "instead of", "alternative", "out of"), static(substitutionGuide)},
	{IntentAppHelp, isAppQuestion, static(appHelp)},
	{IntentMealPlanning, containsAny("meal plan", "week", "grocery", "shopping"), static(mealPlanning)},
}

func isAppQuestion(t *turn) bool {
	return strings.Contains(t.message, "how") && containsAny("app", "use", "work")(t)
}

func quickReply(t *turn) string {
	if isRepeat(t.message, t.history) {
		return moreQuickRecipes
	}
	return quickRecipes
}

func inventoryReply(t *turn) string {
	if len(t.inventory) == 0 {
		return popularCategories
	}

	shown := t.inventory
	if len(shown) > maxInventoryNames {
		shown = shown[:maxInventoryNames]
	}
	names := strings.Join(shown, ", ")
	if len(t.inventory) > maxInventoryNames {
		names += "..."
	}
	return inventoryIdeasHead + names + inventoryIdeasTail
}

// isRepeat 歷史訊息中是否出現目前訊息的前 20 個字元
//
// 空訊息的前綴為空字串，只要有任何歷史訊息就會視為重複。
func isRepeat(message string, history []string) bool {
	prefix := message
	if r := []rune(message); len(r) > repeatPrefixLen {
		prefix = string(r[:repeatPrefixLen])
	}
	for _, h := range history {
		if strings.Contains(strings.ToLower(h), prefix) {
			return true
		}
	}
	return false
}

// Respond 分類訊息並回傳對應的模板
func Respond(req Request) Reply {
	t := &turn{
		message:   strings.ToLower(req.Message),
		inventory: req.Inventory,
		history:   req.History,
	}

	for _, r := range rules {
		if r.match(t) {
			return Reply{Intent: r.intent, Text: r.respond(t)}
		}
	}
	return Reply{Intent: IntentDefault, Text: defaultHelp}
}

// GetSmartResponse 回傳助理的文字回覆
func GetSmartResponse(message string, inventory []string, history []string) string {
	return Respond(Request{Message: message, Inventory: inventory, History: history}).Text
}
