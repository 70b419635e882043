// Package shipment provides the Shipment aggregate, its free-form status set
// and tracking numbers.
package shipment
