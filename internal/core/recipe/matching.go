package recipe

import "sort"

// ScoreMatch 計算食譜的配對百分比與是否可立即製作
//
// 沒有任何食材計數的食譜視為 0%，四捨五入採 half-up。
func ScoreMatch(r Recipe) Match {
	return Match{
		Recipe:          r,
		MatchPercentage: matchPercentage(r.UsedIngredientCount, r.MissedIngredientCount),
		CanMakeNow:      r.MissedIngredientCount == 0,
	}
}

func matchPercentage(used, missed int) int {
	total := used + missed
	if total <= 0 {
		return 0
	}
	// round(100*used/total) 以整數運算避免浮點誤差
	return (200*used + total) / (2 * total)
}

// RankRecipes 依配對百分比由高到低排序，同分時保留輸入順序
func RankRecipes(recipes []Recipe) []Match {
	matches := make([]Match, len(recipes))
	for i, r := range recipes {
		matches[i] = ScoreMatch(r)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	return matches
}
