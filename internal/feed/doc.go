// Package feed decodes price update records and answers whether a decoded
// price is usable under caller-supplied freshness and trust constraints.
//
// Ownership boundary:
// - price message, trust level and update record byte layouts
// - trust ordering and staleness validation
//
// Everything here is a pure computation over a caller-owned buffer: no
// clock, no I/O, no retained references to the input bytes.
package feed
