// Package relocation provides the Relocation aggregate: a customer's planned
// move with its inventory, status and mock cost estimate.
package relocation
