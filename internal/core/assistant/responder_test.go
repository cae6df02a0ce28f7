package assistant

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondIntents(t *testing.T) {
	tests := []struct {
		input  string
		intent Intent
		marker string
	}{
		{"how to cook chicken", IntentChicken, "Chicken Cooking Guide"},
		{"Best SPAGHETTI sauce?", IntentPasta, "Pasta Perfection"},
		{"fluffy omelette", IntentEgg, "Egg Mastery"},
		{"ground beef", IntentSteak, "Perfect Steak Every Time"},
		{"brown rice ratio", IntentRice, "Perfect Rice & Grains"},
		{"vegetable sides", IntentVegetable, "Vegetable Cooking Guide"},
		{"gravy help", IntentSauce, "Sauce Secrets"},
		{"roast potatoes", IntentOven, "Oven Cooking Guide"},
		{"more flavor please", IntentSeasoning, "Seasoning Like a Pro"},
		{"quick dinner", IntentQuick, "Quick 15-Minute Recipes"},
		{"dinner in 15", IntentQuick, "Quick 15-Minute Recipes"},
		{"low calorie lunch", IntentHealthy, "Healthy Meal Ideas"},
		{"what can i make", IntentWhatCanICook, "Popular Recipe Categories"},
		{"searing technique", IntentTechnique, "Essential Cooking Techniques"},
		{"I'm out of butter", IntentSubstitution, "Common Ingredient Substitutions"},
		{"how does this app work", IntentAppHelp, "How to Use MealMate"},
		{"plan my week", IntentMealPlanning, "Meal Planning Made Easy"},
		{"xyzzy nonsense", IntentDefault, "I'm your cooking assistant!"},
		{"", IntentDefault, "I'm your cooking assistant!"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reply := Respond(Request{Message: tt.input})
			assert.Equal(t, tt.intent, reply.Intent)
			assert.Contains(t, reply.Text, tt.marker)
		})
	}
}

func TestRespondPriorityOrder(t *testing.T) {
	// chicken 優先於 quick 與 how to
	assert.Equal(t, IntentChicken, Respond(Request{Message: "quick chicken how to"}).Intent)
	// "eggplant" 含有 egg
	assert.Equal(t, IntentEgg, Respond(Request{Message: "eggplant parm"}).Intent)
	// "easy" 先於 healthy 比對
	assert.Equal(t, IntentQuick, Respond(Request{Message: "easy healthy lunch"}).Intent)
	// "how to" 先於 app help
	assert.Equal(t, IntentTechnique, Respond(Request{Message: "how to use this app"}).Intent)
}

func TestGetSmartResponseChicken(t *testing.T) {
	out := GetSmartResponse("how to cook chicken", nil, nil)
	assert.True(t, strings.HasPrefix(out, "🍗 **Chicken Cooking Guide:**"))
	assert.Contains(t, out, "Use thermometer (165°F)")
}

func TestQuickRepeatReturnsAlternate(t *testing.T) {
	first := GetSmartResponse("quick dinner", nil, nil)
	assert.True(t, strings.HasPrefix(first, "🍳 **Quick 15-Minute Recipes:**"))

	second := GetSmartResponse("quick dinner", nil, []string{"Quick Dinner"})
	assert.True(t, strings.HasPrefix(second, "⚡ **More Quick Recipes:**"))
}

func TestQuickRepeatUsesTwentyCharacterPrefix(t *testing.T) {
	msg := "quick meals for a busy tuesday night"
	history := []string{"earlier: quick meals for a busy weekend"}

	reply := Respond(Request{Message: msg, History: history})
	assert.Equal(t, IntentQuick, reply.Intent)
	assert.Contains(t, reply.Text, "More Quick Recipes")

	reply = Respond(Request{Message: msg, History: []string{"quick meals for two"}})
	assert.Contains(t, reply.Text, "Quick 15-Minute Recipes")
}

func TestRepeatPrefixCountsRunes(t *testing.T) {
	msg := "🍳🍳 quick eggs for a lazy sunday"

	assert.True(t, isRepeat(msg, []string{"yesterday: 🍳🍳 quick eggs for a crowd"}))
	assert.False(t, isRepeat(msg, []string{"🍳🍳 quick eggs for x"}))
}

func TestWhatCanICookInterpolatesFirstFive(t *testing.T) {
	inventory := []string{"egg", "milk", "bread", "rice", "chicken", "cheese"}
	out := GetSmartResponse("what can i cook", inventory, nil)

	assert.Contains(t, out, "Based on your inventory (egg, milk, bread, rice, chicken...), here are ideas:")
	assert.NotContains(t, out, "cheese")
}

func TestWhatCanICookWithoutEllipsis(t *testing.T) {
	out := GetSmartResponse("any suggestions", []string{"tofu", "leek"}, nil)
	assert.Contains(t, out, "(tofu, leek), here are ideas:")
}

func TestIsRepeatEmptyMessage(t *testing.T) {
	assert.True(t, isRepeat("", []string{"anything"}))
	assert.False(t, isRepeat("", nil))
}

func TestRespondConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, IntentPasta, Respond(Request{Message: "pasta"}).Intent)
		}()
	}
	wg.Wait()
}

func TestGetRecipeDetails(t *testing.T) {
	out := GetRecipeDetails("eggs")
	assert.True(t, strings.HasPrefix(out, "🍳 **Perfect Scrambled Eggs**\n⏱️ Time: 5 minutes | 📊 Difficulty: Easy\n\n**Ingredients:**\n- 2-3 eggs\n"))
	assert.Contains(t, out, "\n\n**Instructions:**\n1. Beat eggs with a splash of milk, salt, and pepper\n")
	assert.Contains(t, out, "6. Serve immediately\n\n**Pro Tips:**\n💡 Low heat is key for creamy eggs\n")
	assert.True(t, strings.HasSuffix(out, "💡 Add cheese or herbs for variety"))

	assert.Contains(t, GetRecipeDetails("CHICKEN"), "Pan-Seared Chicken Breast")
	assert.Contains(t, GetRecipeDetails("perfect"), "Perfect Scrambled Eggs")
	assert.Equal(t, recipeNotFound, GetRecipeDetails("unicorn"))
}

func TestFindRecipeReturnsIndependentCopy(t *testing.T) {
	before := GetRecipeDetails("eggs")

	r, ok := FindRecipe("eggs")
	require.True(t, ok)
	r.Name = "changed"
	r.Ingredients[0] = "MUTATED"
	r.Instructions[0] = "MUTATED"
	r.Tips[0] = "MUTATED"

	after := GetRecipeDetails("eggs")
	assert.Equal(t, before, after)
	assert.NotContains(t, after, "MUTATED")

	again, _ := FindRecipe("eggs")
	assert.Equal(t, "2-3 eggs", again.Ingredients[0])
}
