package ml

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ColumnHowManySold = "How_Many_Sold"
	ColumnRating      = "RATING"
)

// FeatureRow is the single record handed to a model: units sold and product rating.
type FeatureRow struct {
	HowManySold int64
	Rating      float64
}

// FeatureNames returns the column names of a FeatureRow in column order.
func FeatureNames() []string {
	return []string{
		ColumnHowManySold,
		ColumnRating,
	}
}

// FeatureVector returns the row values in FeatureNames order.
func FeatureVector(row FeatureRow) []float64 {
	return []float64{
		float64(row.HowManySold),
		row.Rating,
	}
}

// alignFeatures checks that the model was fit on exactly the row's columns, in order.
func alignFeatures(expected []string) error {
	got := FeatureNames()
	if equalNames(expected, got) {
		return nil
	}

	seen := make(map[string]bool, len(expected))
	for _, name := range expected {
		seen[name] = true
	}
	var unseen []string
	for _, name := range got {
		if !seen[name] {
			unseen = append(unseen, name)
		}
		delete(seen, name)
	}
	var missing []string
	for _, name := range expected {
		if seen[name] {
			missing = append(missing, name)
		}
	}

	var b strings.Builder
	b.WriteString("the feature names should match those that were passed during fit")
	if len(unseen) > 0 {
		fmt.Fprintf(&b, "; feature names unseen at fit time: %s", strings.Join(unseen, ", "))
	}
	if len(missing) > 0 {
		fmt.Fprintf(&b, "; feature names seen at fit time, yet now missing: %s", strings.Join(missing, ", "))
	}
	if len(unseen) == 0 && len(missing) == 0 {
		fmt.Fprintf(&b, "; expected order %s, got %s", strings.Join(expected, ", "), strings.Join(got, ", "))
	}
	return errors.New(b.String())
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
