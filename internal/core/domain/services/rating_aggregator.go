package services

import (
	"strconv"

	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/domain/model/review"

	"github.com/shopspring/decimal"
)

// ratingPrecision is the number of decimals kept on a provider's rating.
const ratingPrecision = 2

// RatingAggregator derives a provider's rating and review count from the
// reviews that reference it.
//
// Business rules:
//   - rating is the arithmetic mean of all review ratings, taken as a float64
//     and rounded to two decimals with ties to even (4.125 -> 4.12)
//   - total_reviews is the number of reviews
//   - with no reviews the profile is left untouched
//
// The caller must hold the provider row lock and pass the complete rating
// set read inside the same transaction.
//
// Example usage:
//
//	aggregator := NewRatingAggregator()
//	changed, err := aggregator.Recompute(profile, []review.Rating{5, 4, 5})
//	// profile.Rating() == 4.67, profile.TotalReviews() == 3
type RatingAggregator struct{}

func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// Aggregate returns the rounded mean and count of ratings. ok is false for
// an empty set.
func (RatingAggregator) Aggregate(ratings []review.Rating) (mean decimal.Decimal, count int, ok bool) {
	if len(ratings) == 0 {
		return decimal.Zero, 0, false
	}

	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}

	count = len(ratings)
	avg := float64(sum) / float64(count)
	mean = decimal.RequireFromString(strconv.FormatFloat(avg, 'f', ratingPrecision, 64))
	return mean, count, true
}

// Recompute applies the aggregate of ratings to profile and reports whether
// the profile changed.
func (a RatingAggregator) Recompute(profile *provider.Profile, ratings []review.Rating) (bool, error) {
	if err := profile.Validate(); err != nil {
		return false, err
	}

	mean, count, ok := a.Aggregate(ratings)
	if !ok {
		return false, nil
	}

	if err := profile.ApplyRatingAggregate(mean, count); err != nil {
		return false, err
	}
	return true, nil
}
