package pricing

import (
	"errors"
	"math"
	"sort"

	"pricewise/models"
	"pricewise/utils"
)

// ErrEmptyDataset is returned when there are no reference records to
// neighbour against.
var ErrEmptyDataset = errors.New("reference dataset is empty")

// DefaultK is the default neighbour count for PredictPriceWithKNN.
const DefaultK = 3

const numFeatures = 5

// featureVector holds the numeric features extracted from a phone record:
// RAM, storage, screen size, battery and camera resolution.
type featureVector [numFeatures]float64

func extractFeatures(r models.PhoneRecord) featureVector {
	return featureVector{
		utils.ParseLeadingNumber(r.RAM),
		utils.ParseLeadingNumber(r.Storage),
		utils.ParseLeadingNumber(r.ScreenSize),
		utils.ParseLeadingNumber(r.Battery),
		utils.ParseLeadingNumber(r.Camera),
	}
}

// PredictPriceWithKNN estimates a launch price for the query phone from its k
// nearest dataset records. Features are min-max normalized over the dataset,
// distance is Euclidean, and the price is an inverse-distance-weighted
// average of the neighbours. Confidence falls as the mean neighbour distance
// grows and is clamped to [0,100]. Deterministic for identical inputs.
func PredictPriceWithKNN(query models.PhoneRecord, dataset []models.PhoneRecord, k int) (models.KNNPrediction, error) {
	if len(dataset) == 0 {
		return models.KNNPrediction{}, ErrEmptyDataset
	}
	if k <= 0 {
		k = DefaultK
	}
	if k > len(dataset) {
		k = len(dataset)
	}

	vectors := make([]featureVector, len(dataset))
	var mins, maxs featureVector
	for i, r := range dataset {
		vectors[i] = extractFeatures(r)
		for f := 0; f < numFeatures; f++ {
			if i == 0 || vectors[i][f] < mins[f] {
				mins[f] = vectors[i][f]
			}
			if i == 0 || vectors[i][f] > maxs[f] {
				maxs[f] = vectors[i][f]
			}
		}
	}

	normalize := func(v featureVector) featureVector {
		var out featureVector
		for f := 0; f < numFeatures; f++ {
			span := maxs[f] - mins[f]
			if span > 0 {
				out[f] = (v[f] - mins[f]) / span
			}
		}
		return out
	}

	queryVec := normalize(extractFeatures(query))

	type neighbour struct {
		index    int
		distance float64
	}
	neighbours := make([]neighbour, len(dataset))
	for i := range dataset {
		vec := normalize(vectors[i])
		var sum float64
		for f := 0; f < numFeatures; f++ {
			d := vec[f] - queryVec[f]
			sum += d * d
		}
		neighbours[i] = neighbour{index: i, distance: math.Sqrt(sum)}
	}

	// Stable sort keeps insertion order for equal distances.
	sort.SliceStable(neighbours, func(a, b int) bool {
		return neighbours[a].distance < neighbours[b].distance
	})

	var weightedSum, weightTotal, distanceTotal float64
	for _, n := range neighbours[:k] {
		w := 1 / (n.distance + 1e-9)
		weightedSum += w * dataset[n.index].LaunchPrice
		weightTotal += w
		distanceTotal += n.distance
	}

	avgDistance := distanceTotal / float64(k)
	confidence := (1 - avgDistance/math.Sqrt(numFeatures)) * 100
	confidence = math.Max(0, math.Min(100, confidence))

	return models.KNNPrediction{
		PredictedPrice: round2(weightedSum / weightTotal),
		Confidence:     round2(confidence),
	}, nil
}
