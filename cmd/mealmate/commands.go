package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"mealmate/internal/core/assistant"
	"mealmate/internal/core/recipe"
	"mealmate/internal/pkg/common"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mealmate",
		Short:         "Offline tools for the MealMate cooking assistant",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			common.InitNopLogger()
		},
	}
	root.AddCommand(newAskCmd(), newRecipeCmd(), newRankCmd())
	return root
}

// --- ask ---

func newAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the cooking assistant a question",
		Long: `Ask the rule-based cooking assistant a question.

Examples:
  mealmate ask "how do I cook chicken"
  mealmate ask "what can I cook" --inventory egg,leek,rice`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inventoryStr, _ := cmd.Flags().GetString("inventory")
			showIntent, _ := cmd.Flags().GetBool("intent")

			var inventory []string
			for _, name := range strings.Split(inventoryStr, ",") {
				if name = strings.TrimSpace(name); name != "" {
					inventory = append(inventory, name)
				}
			}

			reply := assistant.Respond(assistant.Request{
				Message:   strings.Join(args, " "),
				Inventory: inventory,
			})

			out := cmd.OutOrStdout()
			if showIntent {
				fmt.Fprintf(out, "[%s]\n", reply.Intent)
			}
			fmt.Fprintln(out, reply.Text)
			return nil
		},
	}
	cmd.Flags().String("inventory", "", "comma-separated ingredients on hand")
	cmd.Flags().Bool("intent", false, "print the matched intent before the reply")
	return cmd
}

// --- recipe ---

func newRecipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recipe <name>",
		Short: "Show a recipe from the built-in catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), assistant.GetRecipeDetails(strings.Join(args, " ")))
			return nil
		},
	}
}

// --- rank ---

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <file.json>",
		Short: "Rank a saved findByIngredients response by match percentage",
		Long: `Rank a saved findByIngredients response by match percentage.

Pass "-" to read the JSON array from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}

			var recipes []recipe.Recipe
			if err := common.DecodeJSON(r, &recipes); err != nil {
				return fmt.Errorf("decoding recipes: %w", err)
			}

			printMatches(cmd.OutOrStdout(), recipe.RankRecipes(recipes))
			return nil
		},
	}
}

func printMatches(w io.Writer, matches []recipe.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "no recipes")
		return
	}
	for _, m := range matches {
		marker := " "
		if m.CanMakeNow {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %3d%%  %-40s used %d, missing %d\n",
			marker, m.MatchPercentage, m.Title, m.UsedIngredientCount, m.MissedIngredientCount)
	}
}
