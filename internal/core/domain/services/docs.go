// Package services provides the domain services of the relocation
// marketplace: logic that spans aggregates or does not belong to any one of
// them.
//
// The package includes:
//   - RatingAggregator: derives a provider's rating and review count
//   - BookingLifecycle: booking transitions and their relocation cascade
//   - AccessPolicy: role-based visibility of every resource kind
//
// Services are stateless and free of I/O; the application layer loads and
// persists the aggregates they operate on.
package services
