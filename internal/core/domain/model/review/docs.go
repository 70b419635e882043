// Package review provides the Review aggregate and the 1-5 Rating value.
// Writing a review always goes together with a recompute of the reviewed
// provider's aggregate rating.
package review
