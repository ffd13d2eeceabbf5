package predictor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"shoeprice/ml"
)

const (
	MinHowManySold = 0
	MinRating      = 0.0
	MaxRating      = 5.0
	RatingStep     = 0.1
	DefaultRating  = 4.0
)

type PredictionInput struct {
	HowManySold int64   `json:"how_many_sold"`
	Rating      float64 `json:"rating"`
}

func DefaultInput() PredictionInput {
	return PredictionInput{HowManySold: MinHowManySold, Rating: DefaultRating}
}

// Clamp applies the widget ranges: count floored at 0, rating held to [0, 5]
// on the 0.1 grid.
func (in PredictionInput) Clamp() PredictionInput {
	if in.HowManySold < MinHowManySold {
		in.HowManySold = MinHowManySold
	}
	in.Rating = math.Round(in.Rating*10) / 10
	in.Rating = math.Max(MinRating, math.Min(MaxRating, in.Rating))
	return in
}

func (in PredictionInput) Row() ml.FeatureRow {
	return ml.FeatureRow{HowManySold: in.HowManySold, Rating: in.Rating}
}

// ParseInput reads the raw form values. Malformed values come back as a
// *PredictionError.
func ParseInput(howManySold, rating string) (PredictionInput, error) {
	var in PredictionInput

	count, err := strconv.ParseInt(strings.TrimSpace(howManySold), 10, 64)
	if err != nil {
		return in, &PredictionError{Err: fmt.Errorf("invalid units sold %q: must be a whole number", howManySold)}
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(rating), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return in, &PredictionError{Err: fmt.Errorf("invalid rating %q: must be a number between 0 and 5", rating)}
	}

	in.HowManySold = count
	in.Rating = value
	return in.Clamp(), nil
}
