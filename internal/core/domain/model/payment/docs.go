// Package payment provides the Payment aggregate. Payments are recorded
// against a booking and settle immediately with a mocked gateway.
package payment
