package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"mealmate/internal/core/chat"
	"mealmate/internal/core/inventory"
	"mealmate/internal/core/shopping"
	"mealmate/internal/core/user"
	"mealmate/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	common.InitNopLogger()
	db, err := Open(":memory:", "silent")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestInventoryService(t *testing.T) {
	ctx := context.Background()
	svc := inventory.NewService(NewInventoryStore(setupDB(t)))

	added, err := svc.AddMultiple(ctx, []inventory.Item{
		{Name: "tomato", Category: "produce"},
		{Name: " eggs ", Category: "frozen"},
		{Name: "milk", Category: "dairy", Source: inventory.SourceScan, Confidence: 0.8},
	})
	require.NoError(t, err)
	require.Len(t, added, 3)
	assert.NotEmpty(t, added[0].ID)
	assert.Equal(t, inventory.SourceManual, added[0].Source)
	assert.Equal(t, inventory.CategoryOther, added[1].Category)
	assert.Equal(t, "eggs", added[1].Name)

	names, err := svc.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tomato", "eggs", "milk"}, names)

	qty := 2.0
	cat := "protein"
	updated, err := svc.Update(ctx, added[1].ID, inventory.Patch{Quantity: &qty, Category: &cat})
	require.NoError(t, err)
	assert.Equal(t, inventory.CategoryProtein, updated.Category)
	require.NotNil(t, updated.Quantity)
	assert.Equal(t, 2.0, *updated.Quantity)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, inventory.CategoryProtein, items[1].Category)
	assert.Equal(t, inventory.SourceScan, items[2].Source)

	_, err = svc.Update(ctx, "missing", inventory.Patch{Quantity: &qty})
	assert.True(t, errors.Is(err, inventory.ErrNotFound))

	require.NoError(t, svc.Remove(ctx, added[0].ID))
	assert.True(t, errors.Is(svc.Remove(ctx, added[0].ID), inventory.ErrNotFound))

	_, err = svc.Add(ctx, inventory.Item{Name: "  "})
	assert.True(t, common.IsValidationError(err))
}

func TestShoppingService(t *testing.T) {
	ctx := context.Background()
	svc := shopping.NewService(NewShoppingStore(setupDB(t)))

	items, err := svc.AddMultiple(ctx, []shopping.Item{
		{IngredientName: "flour", Quantity: 1, Unit: "kg"},
		{IngredientName: "sugar", Quantity: 500, Unit: "g"},
		{IngredientName: "butter", Quantity: 1, Unit: "pack"},
	})
	require.NoError(t, err)

	toggled, err := svc.TogglePurchased(ctx, items[0].ID)
	require.NoError(t, err)
	assert.True(t, toggled.Purchased)

	toggled, err = svc.TogglePurchased(ctx, items[1].ID)
	require.NoError(t, err)
	toggled, err = svc.TogglePurchased(ctx, items[1].ID)
	require.NoError(t, err)
	assert.False(t, toggled.Purchased)

	n, err := svc.ClearPurchased(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "sugar", list[0].IngredientName)

	_, err = svc.TogglePurchased(ctx, "missing")
	assert.True(t, errors.Is(err, shopping.ErrNotFound))

	n, err = svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserServiceQuota(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(NewUserStore(setupDB(t)), 3)

	u, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.DefaultUserID, u.ID)
	assert.Equal(t, user.TierFree, u.Tier)
	assert.Equal(t, 3, user.ScansRemaining(u))
	assert.True(t, u.ScanQuota.ResetDate.After(time.Now()))

	for i := 0; i < 3; i++ {
		ok, err := svc.CanScan(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		_, err = svc.IncrementScan(ctx)
		require.NoError(t, err)
	}

	ok, err := svc.CanScan(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	u, err = svc.UpgradeToPremium(ctx)
	require.NoError(t, err)
	assert.Equal(t, -1, user.ScansRemaining(u))

	ok, err = svc.CanScan(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	u, err = svc.CompleteOnboarding(ctx)
	require.NoError(t, err)
	assert.True(t, u.OnboardingCompleted)

	u, err = svc.ResetScanQuota(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, u.ScanQuota.Used)
}

func TestConversationService(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	inv := inventory.NewService(NewInventoryStore(db))
	svc := chat.NewService(NewConversationStore(db), inv)

	_, err := inv.AddMultiple(ctx, []inventory.Item{{Name: "egg"}, {Name: "leek"}})
	require.NoError(t, err)

	first, err := svc.Send(ctx, "c1", "quick dinner", "")
	require.NoError(t, err)
	assert.Contains(t, first.Answer.Text, "Quick 15-Minute Recipes")

	second, err := svc.Send(ctx, "c1", "quick dinner", "")
	require.NoError(t, err)
	assert.Contains(t, second.Answer.Text, "More Quick Recipes")

	// 其他對話不受影響
	other, err := svc.Send(ctx, "c2", "quick dinner", "")
	require.NoError(t, err)
	assert.Contains(t, other.Answer.Text, "Quick 15-Minute Recipes")

	ideas, err := svc.Send(ctx, "c2", "what can i cook", "")
	require.NoError(t, err)
	assert.Contains(t, ideas.Answer.Text, "(egg, leek)")

	history, err := svc.History(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.True(t, history[0].IsUser)
	assert.False(t, history[1].IsUser)
	assert.Equal(t, "quick", history[1].Intent)

	_, err = svc.Send(ctx, "c1", "   ", "")
	assert.True(t, common.IsValidationError(err))
}
