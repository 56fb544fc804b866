// Package widgets contains dumb render primitives for the terminal page.
//
// Allowed here:
// - stateless drawing/composition helpers (cards, grids, page chrome, reveal clipping)
//
// Not allowed here:
// - key handling, selection changes, or animation timing
package widgets
