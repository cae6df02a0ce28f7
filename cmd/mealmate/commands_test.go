package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAskCommand(t *testing.T) {
	out, err := runCmd(t, "", "ask", "--intent", "what", "can", "i", "cook", "--inventory", "egg, leek")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[what_can_i_cook]\n"))
	assert.Contains(t, out, "(egg, leek)")
}

func TestRecipeCommand(t *testing.T) {
	out, err := runCmd(t, "", "recipe", "pasta")
	require.NoError(t, err)
	assert.Contains(t, out, "Pasta")

	_, err = runCmd(t, "", "recipe")
	assert.Error(t, err)
}

func TestRankCommand(t *testing.T) {
	payload := `[
		{"id":1,"title":"Omelette","usedIngredientCount":1,"missedIngredientCount":2},
		{"id":2,"title":"Fried Rice","usedIngredientCount":3,"missedIngredientCount":0}
	]`
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	out, err := runCmd(t, "", "rank", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "100%")
	assert.Contains(t, lines[0], "Fried Rice")
	assert.True(t, strings.HasPrefix(lines[0], "*"))
	assert.Contains(t, lines[1], " 33%")

	out, err = runCmd(t, payload, "rank", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Omelette")

	_, err = runCmd(t, "not json", "rank", "-")
	assert.Error(t, err)
}
