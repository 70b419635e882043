// Package document provides the Document aggregate: metadata for a file an
// account uploaded, optionally attached to one of its relocations.
package document
