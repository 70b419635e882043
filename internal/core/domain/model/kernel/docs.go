// Package kernel provides the domain primitives shared by every aggregate of
// the relocation marketplace.
//
// The package includes:
//   - UUID: the identifier value object
//   - Money: a non-negative two-decimal amount backed by shopspring/decimal
//   - DomainEvent and Events: the event plumbing aggregates embed
//
// Values are immutable and safe for concurrent use. Zero values are invalid
// and are rejected by their Validate methods.
package kernel
