// Package provider provides the service-provider Profile aggregate.
//
// A profile belongs to exactly one provider account. Its rating and
// total_reviews are derived state maintained by services.RatingAggregator.
package provider
