// Package booking provides the Booking aggregate and its status state
// machine.
//
// Key business rules:
//   - a new booking is always Pending
//   - Confirm is allowed only from Pending
//   - Cancel is allowed only from Pending or Confirmed; a second cancel fails
//   - InProgress and Completed are operator states
//
// Every status change raises a StatusChanged domain event.
package booking
