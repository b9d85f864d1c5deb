package pricing

import (
	"math/rand"
	"sort"

	"pricewise/models"
)

// NormalizeImportances assigns each feature a weight drawn from rng, then
// normalizes and sorts via NormalizeWeights. The random weights stand in for
// a real model; callers that need determinism pass a seeded source.
func NormalizeImportances(features []string, rng *rand.Rand) []models.FeatureImportance {
	weights := make([]float64, len(features))
	for i := range weights {
		weights[i] = rng.Float64()
	}
	return NormalizeWeights(features, weights)
}

// NormalizeWeights scales the given weights onto the probability simplex
// (sum 1.0) and returns them sorted descending, stable for equal weights.
// weights is parallel to features; missing entries count as 0 and extra
// entries are ignored.
func NormalizeWeights(features []string, weights []float64) []models.FeatureImportance {
	weight := func(i int) float64 {
		if i < len(weights) {
			return weights[i]
		}
		return 0
	}

	var total float64
	for i := range features {
		total += weight(i)
	}

	out := make([]models.FeatureImportance, len(features))
	for i, name := range features {
		importance := 0.0
		if total > 0 {
			importance = weight(i) / total
		} else if len(features) > 0 {
			importance = 1 / float64(len(features))
		}
		out[i] = models.FeatureImportance{Feature: name, Importance: importance}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Importance > out[b].Importance
	})

	return out
}
