package review

import "relocation/internal/pkg/errs"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a whole-star score from 1 to 5.
type Rating int

func NewRating(value int) (Rating, error) {
	r := Rating(value)
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r, nil
}

func (r Rating) Validate() error {
	if r < MinRating || r > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", int(r), MinRating, MaxRating)
	}
	return nil
}

func (r Rating) Int() int {
	return int(r)
}
